package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=todo_list.go -destination=todo_list_mock.go -package=handlers

// TodoLister defines the interface that the service must implement.
type TodoLister interface {
	List(ctx context.Context, username string) ([]models.Todo, error)
}

// NewListTodosHandler returns an HTTP handler listing the caller's todos.
// @Summary List todos
// @Description Returns the todos owned by the authenticated user in creation order
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo "Todos"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos [get]
// @Security BearerAuth
func NewListTodosHandler(svc TodoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}

		todos, err := svc.List(r.Context(), username)
		if err != nil {
			writeTodoError(w, r, err, "failed to list todos", "username", username)
			return
		}
		if todos == nil {
			todos = []models.Todo{}
		}

		writeJSON(w, http.StatusOK, todos)
	}
}
