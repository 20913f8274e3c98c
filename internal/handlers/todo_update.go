package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=todo_update.go -destination=todo_update_mock.go -package=handlers

// TodoUpdater defines the interface that the service must implement.
type TodoUpdater interface {
	Update(ctx context.Context, username string, id int64, input models.TodoInput) (*models.Todo, error)
}

// NewUpdateTodoHandler returns an HTTP handler replacing a todo.
// @Summary Replace todo
// @Description Replaces title, description and completed. Id, owner and creation time are kept.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body handlers.TodoRequest true "Todo"
// @Success 200 {object} models.Todo "Updated todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [put]
// @Security BearerAuth
func NewUpdateTodoHandler(svc TodoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := todoID(w, r)
		if !ok {
			return
		}
		req, ok := decodeTodoRequest(w, r)
		if !ok {
			return
		}

		todo, err := svc.Update(r.Context(), username, id, req.input())
		if err != nil {
			writeTodoError(w, r, err, "failed to update todo", "username", username, "id", id)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
