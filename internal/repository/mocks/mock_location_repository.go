package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodkeeper/internal/model"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) List(ctx context.Context) ([]model.StorageLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StorageLocation), args.Error(1)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id string) (*model.StorageLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, loc *model.StorageLocation) (*model.StorageLocation, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id string, force bool) (int, error) {
	args := m.Called(ctx, id, force)
	return args.Int(0), args.Error(1)
}
