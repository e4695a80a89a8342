package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
	repoMocks "foodkeeper/internal/repository/mocks"
)

func TestLocationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Create", ctx, &model.StorageLocation{Name: "地下室"}).
			Return(&model.StorageLocation{ID: "6", Name: "地下室"}, nil)

		loc, err := svc.Create(ctx, "地下室")
		require.NoError(t, err)
		assert.Equal(t, "6", loc.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		_, err := svc.Create(ctx, "")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Location name is required", vErr.Message)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLocationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renamed", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Update", ctx, &model.StorageLocation{ID: "1", Name: "メイン冷蔵庫"}).
			Return(&model.StorageLocation{ID: "1", Name: "メイン冷蔵庫"}, nil)

		loc, err := svc.Update(ctx, "1", "メイン冷蔵庫")
		require.NoError(t, err)
		assert.Equal(t, "メイン冷蔵庫", loc.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, "42", "x")
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		_, err := svc.Update(ctx, "1", "")

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestLocationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Delete", ctx, "4", false).Return(0, nil)

		assert.NoError(t, svc.Delete(ctx, "4", false))
	})

	t.Run("in use maps to conflict with count", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Delete", ctx, "1", false).Return(0, &repository.InUseError{ItemsCount: 3})

		err := svc.Delete(ctx, "1", false)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, 3, conflict.ItemsCount)
		assert.Equal(t, locationInUseMessage, conflict.Message)
	})

	t.Run("force passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Delete", ctx, "1", true).Return(3, nil)

		assert.NoError(t, svc.Delete(ctx, "1", true))
		mRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mRepo := new(repoMocks.MockLocationRepository)
		svc := NewLocationService(mRepo)

		mRepo.On("Delete", ctx, "99", false).Return(0, repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, "99", false), ErrLocationNotFound)
	})
}
