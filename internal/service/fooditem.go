package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// FoodItemInput carries the client-editable fields of a food item.
// RegistrationDate is optional: it defaults to the current date on create and
// is preserved from the existing record on update when omitted.
type FoodItemInput struct {
	Name             string `validate:"required"`
	ExpiryDate       *model.Date
	RegistrationDate *model.Date
	LocationID       *string
	HasNoExpiry      bool
}

// FoodItemService defines the use cases for tracked food items.
type FoodItemService interface {
	// List returns all items, or only those in locationID when non-empty.
	List(ctx context.Context, locationID string) ([]model.FoodItem, error)

	// Create validates and stores a new item.
	Create(ctx context.Context, in FoodItemInput) (*model.FoodItem, error)

	// Update validates and replaces the item wholesale.
	Update(ctx context.Context, id string, in FoodItemInput) (*model.FoodItem, error)

	// Delete removes an item by ID.
	Delete(ctx context.Context, id string) error

	// LocationStats returns the item count per location ID.
	LocationStats(ctx context.Context) (map[string]int, error)
}

type foodItemService struct {
	repo     repository.FoodItemRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewFoodItemService constructs a new FoodItemService.
func NewFoodItemService(repo repository.FoodItemRepository) FoodItemService {
	return &foodItemService{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

// checkInput enforces the creation/update invariants:
// name must be present, and an expiry date is required unless the item is
// flagged as having none.
func (s *foodItemService) checkInput(in *FoodItemInput) error {
	if err := s.validate.Struct(in); err != nil {
		return &ValidationError{Message: "Name and expiry date are required"}
	}
	if !in.HasNoExpiry && in.ExpiryDate == nil {
		return &ValidationError{Message: "Name and expiry date are required"}
	}
	if in.HasNoExpiry {
		// hasNoExpiry == true ⇔ expiryDate absent
		in.ExpiryDate = nil
	}
	return nil
}

func (s *foodItemService) List(ctx context.Context, locationID string) ([]model.FoodItem, error) {
	return s.repo.List(ctx, locationID)
}

func (s *foodItemService) Create(ctx context.Context, in FoodItemInput) (*model.FoodItem, error) {
	if err := s.checkInput(&in); err != nil {
		return nil, err
	}

	registration := model.NewDate(s.now())
	if in.RegistrationDate != nil {
		registration = *in.RegistrationDate
	}

	return s.repo.Create(ctx, &model.FoodItem{
		Name:             in.Name,
		ExpiryDate:       in.ExpiryDate,
		RegistrationDate: registration,
		LocationID:       in.LocationID,
		HasNoExpiry:      in.HasNoExpiry,
	})
}

func (s *foodItemService) Update(ctx context.Context, id string, in FoodItemInput) (*model.FoodItem, error) {
	if err := s.checkInput(&in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	// Registration date is preserved unless explicitly resubmitted.
	registration := existing.RegistrationDate
	if in.RegistrationDate != nil {
		registration = *in.RegistrationDate
	}

	updated, err := s.repo.Update(ctx, &model.FoodItem{
		ID:               id,
		Name:             in.Name,
		ExpiryDate:       in.ExpiryDate,
		RegistrationDate: registration,
		LocationID:       in.LocationID,
		HasNoExpiry:      in.HasNoExpiry,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *foodItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *foodItemService) LocationStats(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByLocation(ctx)
}
