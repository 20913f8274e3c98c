package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=todo_create.go -destination=todo_create_mock.go -package=handlers

// TodoCreator defines the interface that the service must implement.
type TodoCreator interface {
	Create(ctx context.Context, username string, input models.TodoInput) (*models.Todo, error)
}

// NewCreateTodoHandler returns an HTTP handler creating a todo.
// @Summary Create todo
// @Description Stores a new todo owned by the authenticated user. The id is assigned by the server.
// @Tags todos
// @Accept json
// @Produce json
// @Param request body handlers.TodoRequest true "Todo"
// @Success 200 {object} models.Todo "Created todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / empty title"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /todos [post]
// @Security BearerAuth
func NewCreateTodoHandler(svc TodoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}
		req, ok := decodeTodoRequest(w, r)
		if !ok {
			return
		}

		todo, err := svc.Create(r.Context(), username, req.input())
		if err != nil {
			writeTodoError(w, r, err, "failed to create todo", "username", username)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
