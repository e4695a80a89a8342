package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodkeeper/internal/model"
)

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) List(ctx context.Context) ([]model.StorageLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StorageLocation), args.Error(1)
}

func (m *MockLocationService) Create(ctx context.Context, name string) (*model.StorageLocation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}

func (m *MockLocationService) Update(ctx context.Context, id, name string) (*model.StorageLocation, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageLocation), args.Error(1)
}

func (m *MockLocationService) Delete(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}
