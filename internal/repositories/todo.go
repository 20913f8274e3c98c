package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

// ErrTodoNotFound is returned when no todo has the requested id.
var ErrTodoNotFound = fmt.Errorf("todo %w", errs.ErrNotFound)

// TodoMemoryRepository keeps todos in insertion order in process memory.
// Ids come from a monotonic counter and are never reused.
type TodoMemoryRepository struct {
	mu     sync.Mutex
	todos  []models.Todo
	nextID int64
	now    func() time.Time
}

// TodoRepositoryOpt configures a TodoMemoryRepository.
type TodoRepositoryOpt func(*TodoMemoryRepository)

// WithTodoClock overrides the clock used to stamp CreatedAt.
func WithTodoClock(now func() time.Time) TodoRepositoryOpt {
	return func(r *TodoMemoryRepository) {
		r.now = now
	}
}

func NewTodoMemoryRepository(opts ...TodoRepositoryOpt) *TodoMemoryRepository {
	r := &TodoMemoryRepository{
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns all todos, or only those of owner when owner is not nil.
func (r *TodoMemoryRepository) List(ctx context.Context, owner *string) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		if owner != nil && todo.OwnerID != *owner {
			continue
		}
		result = append(result, todo)
	}

	logger.Log.Debugw("list todos", "owner", owner, "result", len(result))
	return result, nil
}

func (r *TodoMemoryRepository) Get(ctx context.Context, id int64) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		logger.Log.Debugw("get todo", "id", id, "error", ErrTodoNotFound)
		return nil, ErrTodoNotFound
	}

	todo := r.todos[i]
	return &todo, nil
}

func (r *TodoMemoryRepository) Create(ctx context.Context, owner string, input models.TodoInput) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo := models.Todo{
		ID:          r.nextID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   r.now(),
		OwnerID:     owner,
	}
	r.nextID++
	r.todos = append(r.todos, todo)

	logger.Log.Infow("create todo", "id", todo.ID, "owner", owner)
	return &todo, nil
}

// Update replaces the mutable fields of a todo. Id, owner and creation time are kept.
func (r *TodoMemoryRepository) Update(ctx context.Context, id int64, input models.TodoInput) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		logger.Log.Infow("update todo", "id", id, "error", ErrTodoNotFound)
		return nil, ErrTodoNotFound
	}

	r.todos[i].Title = input.Title
	r.todos[i].Description = input.Description
	r.todos[i].Completed = input.Completed

	logger.Log.Infow("update todo", "id", id)
	todo := r.todos[i]
	return &todo, nil
}

func (r *TodoMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		logger.Log.Infow("delete todo", "id", id, "error", ErrTodoNotFound)
		return ErrTodoNotFound
	}

	r.todos = append(r.todos[:i], r.todos[i+1:]...)

	logger.Log.Infow("delete todo", "id", id)
	return nil
}

// indexOf must be called with mu held.
func (r *TodoMemoryRepository) indexOf(id int64) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}
