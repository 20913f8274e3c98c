package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/models"
	"github.com/sbilibin2017/gw-todo/internal/repositories"
	"github.com/sbilibin2017/gw-todo/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	svc := services.NewTodoService(mockReader, services.NewMockTodoWriter(ctrl))

	owned := []models.Todo{{ID: 1, Title: "a", OwnerID: "alice"}}
	alice := "alice"

	mockReader.EXPECT().List(gomock.Any(), &alice).Return(owned, nil)

	todos, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, owned, todos)

	mockReader.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	_, err = svc.List(context.Background(), "alice")
	assert.EqualError(t, err, "boom")
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	svc := services.NewTodoService(mockReader, services.NewMockTodoWriter(ctrl))

	tests := []struct {
		name      string
		stored    *models.Todo
		readerErr error
		wantErr   error
	}{
		{
			name:   "owned by caller",
			stored: &models.Todo{ID: 1, Title: "a", OwnerID: "alice"},
		},
		{
			name:    "owned by someone else",
			stored:  &models.Todo{ID: 1, Title: "a", OwnerID: "bob"},
			wantErr: services.ErrTodoNotFound,
		},
		{
			name:      "missing",
			readerErr: repositories.ErrTodoNotFound,
			wantErr:   services.ErrTodoNotFound,
		},
		{
			name:      "storage failure",
			readerErr: errors.New("boom"),
			wantErr:   errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().Get(gomock.Any(), int64(1)).Return(tt.stored, tt.readerErr)

			todo, err := svc.Get(context.Background(), "alice", 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, todo)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.stored, todo)
			}
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockTodoWriter(ctrl)
	svc := services.NewTodoService(services.NewMockTodoReader(ctrl), mockWriter)

	t.Run("stores with owner", func(t *testing.T) {
		input := models.TodoInput{Title: "a", Description: "b"}
		created := &models.Todo{ID: 1, Title: "a", Description: "b", OwnerID: "alice"}
		mockWriter.EXPECT().Create(gomock.Any(), "alice", input).Return(created, nil)

		todo, err := svc.Create(context.Background(), "alice", input)
		require.NoError(t, err)
		assert.Equal(t, created, todo)
	})

	t.Run("empty title", func(t *testing.T) {
		todo, err := svc.Create(context.Background(), "alice", models.TodoInput{Description: "b"})
		assert.ErrorIs(t, err, services.ErrEmptyTitle)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, todo)
	})
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)
	svc := services.NewTodoService(mockReader, mockWriter)

	input := models.TodoInput{Title: "x", Description: "y", Completed: true}

	t.Run("owned by caller", func(t *testing.T) {
		updated := &models.Todo{ID: 3, Title: "x", Description: "y", Completed: true, OwnerID: "alice"}
		gomock.InOrder(
			mockReader.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.Todo{ID: 3, OwnerID: "alice"}, nil),
			mockWriter.EXPECT().Update(gomock.Any(), int64(3), input).Return(updated, nil),
		)

		todo, err := svc.Update(context.Background(), "alice", 3, input)
		require.NoError(t, err)
		assert.Equal(t, updated, todo)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.Todo{ID: 3, OwnerID: "bob"}, nil)

		_, err := svc.Update(context.Background(), "alice", 3, input)
		assert.ErrorIs(t, err, services.ErrTodoNotFound)
	})

	t.Run("deleted between check and write", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.Todo{ID: 3, OwnerID: "alice"}, nil)
		mockWriter.EXPECT().Update(gomock.Any(), int64(3), input).Return(nil, repositories.ErrTodoNotFound)

		_, err := svc.Update(context.Background(), "alice", 3, input)
		assert.ErrorIs(t, err, services.ErrTodoNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "alice", 3, models.TodoInput{})
		assert.ErrorIs(t, err, services.ErrEmptyTitle)
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTodoReader(ctrl)
	mockWriter := services.NewMockTodoWriter(ctrl)
	svc := services.NewTodoService(mockReader, mockWriter)

	t.Run("owned by caller", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), int64(5)).Return(&models.Todo{ID: 5, OwnerID: "alice"}, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "alice", 5))
	})

	t.Run("owned by someone else", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), int64(5)).Return(&models.Todo{ID: 5, OwnerID: "bob"}, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), "alice", 5), services.ErrTodoNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), int64(6)).Return(nil, repositories.ErrTodoNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "alice", 6), services.ErrTodoNotFound)
	})
}

// Exercises the service against the in-memory store end to end.
func TestTodoService_WithMemoryRepository(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := repositories.NewTodoMemoryRepository(repositories.WithTodoClock(func() time.Time { return createdAt }))
	svc := services.NewTodoService(repo, repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, "alice", models.TodoInput{Title: "a", Description: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.Completed)

	second, err := svc.Create(ctx, "alice", models.TodoInput{Title: "a", Description: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	_, err = svc.Create(ctx, "bob", models.TodoInput{Title: "c"})
	require.NoError(t, err)

	todos, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	_, err = svc.Get(ctx, "bob", first.ID)
	assert.ErrorIs(t, err, services.ErrTodoNotFound)

	updated, err := svc.Update(ctx, "alice", first.ID, models.TodoInput{Title: "x", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)

	require.NoError(t, svc.Delete(ctx, "alice", first.ID))
	_, err = svc.Get(ctx, "alice", first.ID)
	assert.ErrorIs(t, err, services.ErrTodoNotFound)
}
