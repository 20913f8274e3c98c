package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=todo_get.go -destination=todo_get_mock.go -package=handlers

// TodoGetter defines the interface that the service must implement.
type TodoGetter interface {
	Get(ctx context.Context, username string, id int64) (*models.Todo, error)
}

// NewGetTodoHandler returns an HTTP handler fetching one todo.
// @Summary Get todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} models.Todo "Todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid todo id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [get]
// @Security BearerAuth
func NewGetTodoHandler(svc TodoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := todoID(w, r)
		if !ok {
			return
		}

		todo, err := svc.Get(r.Context(), username, id)
		if err != nil {
			writeTodoError(w, r, err, "failed to get todo", "username", username, "id", id)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
