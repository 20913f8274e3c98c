package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=todo.go -destination=todo_mock.go -package=services

var (
	// ErrEmptyTitle is returned when a todo is created or updated without a title.
	ErrEmptyTitle = fmt.Errorf("title must not be empty: %w", errs.ErrValidation)

	// ErrTodoNotFound is returned when the todo does not exist or belongs to another user.
	ErrTodoNotFound = fmt.Errorf("todo %w", errs.ErrNotFound)
)

// TodoReader defines read operations on stored todos.
type TodoReader interface {
	List(ctx context.Context, owner *string) ([]models.Todo, error) // Returns todos, filtered by owner when set
	Get(ctx context.Context, id int64) (*models.Todo, error)        // Returns a todo by id
}

// TodoWriter defines write operations on stored todos.
type TodoWriter interface {
	Create(ctx context.Context, owner string, input models.TodoInput) (*models.Todo, error) // Stores a new todo
	Update(ctx context.Context, id int64, input models.TodoInput) (*models.Todo, error)     // Replaces mutable fields
	Delete(ctx context.Context, id int64) error                                             // Removes a todo
}

// TodoService scopes todo operations to the user that owns them.
type TodoService struct {
	reader TodoReader
	writer TodoWriter
}

// NewTodoService creates a new TodoService.
func NewTodoService(reader TodoReader, writer TodoWriter) *TodoService {
	return &TodoService{
		reader: reader,
		writer: writer,
	}
}

// List returns the todos owned by username in insertion order.
func (s *TodoService) List(ctx context.Context, username string) ([]models.Todo, error) {
	todos, err := s.reader.List(ctx, &username)
	if err != nil {
		logger.Log.Errorw("failed to list todos", "username", username, "error", err)
		return nil, err
	}
	return todos, nil
}

// Get returns a todo owned by username.
func (s *TodoService) Get(ctx context.Context, username string, id int64) (*models.Todo, error) {
	return s.owned(ctx, username, id)
}

// Create stores a new todo owned by username.
func (s *TodoService) Create(ctx context.Context, username string, input models.TodoInput) (*models.Todo, error) {
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}

	todo, err := s.writer.Create(ctx, username, input)
	if err != nil {
		logger.Log.Errorw("failed to create todo", "username", username, "error", err)
		return nil, err
	}
	return todo, nil
}

// Update replaces the mutable fields of a todo owned by username.
func (s *TodoService) Update(ctx context.Context, username string, id int64, input models.TodoInput) (*models.Todo, error) {
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}

	if _, err := s.owned(ctx, username, id); err != nil {
		return nil, err
	}

	todo, err := s.writer.Update(ctx, id, input)
	if err != nil {
		return nil, s.mapNotFound(err, "failed to update todo", username, id)
	}
	return todo, nil
}

// Delete removes a todo owned by username.
func (s *TodoService) Delete(ctx context.Context, username string, id int64) error {
	if _, err := s.owned(ctx, username, id); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, "failed to delete todo", username, id)
	}
	return nil
}

// owned loads a todo and hides it from everyone but its owner.
func (s *TodoService) owned(ctx context.Context, username string, id int64) (*models.Todo, error) {
	todo, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, "failed to get todo", username, id)
	}
	if todo.OwnerID != username {
		logger.Log.Warnw("todo belongs to another user", "username", username, "id", id)
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoService) mapNotFound(err error, msg, username string, id int64) error {
	if errors.Is(err, errs.ErrNotFound) {
		return ErrTodoNotFound
	}
	logger.Log.Errorw(msg, "username", username, "id", id, "error", err)
	return err
}
