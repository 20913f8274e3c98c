package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

// TodoRequest represents the JSON body for creating or replacing a todo
// swagger:model TodoRequest
type TodoRequest struct {
	// Title
	// required: true
	// default: Buy milk
	Title string `json:"title"`

	// Description
	// default: Two liters
	Description string `json:"description"`

	// Completed flag
	// default: false
	Completed bool `json:"completed"`
}

func (req TodoRequest) input() models.TodoInput {
	return models.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
}

func decodeTodoRequest(w http.ResponseWriter, r *http.Request) (TodoRequest, bool) {
	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warnw("failed to decode todo request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}
