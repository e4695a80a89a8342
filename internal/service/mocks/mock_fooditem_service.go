package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodkeeper/internal/model"
	"foodkeeper/internal/service"
)

type MockFoodItemService struct {
	mock.Mock
}

func (m *MockFoodItemService) List(ctx context.Context, locationID string) ([]model.FoodItem, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) Create(ctx context.Context, in service.FoodItemInput) (*model.FoodItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) Update(ctx context.Context, id string, in service.FoodItemInput) (*model.FoodItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodItemService) LocationStats(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
