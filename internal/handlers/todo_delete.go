package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=todo_delete.go -destination=todo_delete_mock.go -package=handlers

// TodoDeleter defines the interface that the service must implement.
type TodoDeleter interface {
	Delete(ctx context.Context, username string, id int64) error
}

// NewDeleteTodoHandler returns an HTTP handler removing a todo.
// @Summary Delete todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} handlers.MessageResponse "Todo deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid todo id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Router /todos/{id} [delete]
// @Security BearerAuth
func NewDeleteTodoHandler(svc TodoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := todoID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), username, id); err != nil {
			writeTodoError(w, r, err, "failed to delete todo", "username", username, "id", id)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
	}
}
