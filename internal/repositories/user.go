package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

// ErrUsernameTaken is returned by Save when the username is already stored.
var ErrUsernameTaken = fmt.Errorf("username %w", errs.ErrAlreadyExists)

// UserMemoryRepository stores accounts keyed by username.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[string]models.User)}
}

// GetByUsername returns nil without an error when the user does not exist.
func (r *UserMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]

	logger.Log.Debugw("get user", "username", username, "found", ok)

	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserMemoryRepository) Save(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		logger.Log.Infow("save user", "username", user.Username, "error", ErrUsernameTaken)
		return ErrUsernameTaken
	}
	r.users[user.Username] = user

	logger.Log.Infow("save user", "username", user.Username, "email", user.Email)
	return nil
}
