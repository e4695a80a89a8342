package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"foodkeeper/internal/model"
	"foodkeeper/internal/repository"
)

// locationInUseMessage is shown to the user before a forced delete.
const locationInUseMessage = "この保管場所は現在使用中です。それでも削除しますか？"

// LocationService defines the use cases for storage locations.
type LocationService interface {
	// List returns all locations in insertion order.
	List(ctx context.Context) ([]model.StorageLocation, error)

	// Create validates the name and stores a new location.
	Create(ctx context.Context, name string) (*model.StorageLocation, error)

	// Update renames an existing location.
	Update(ctx context.Context, id, name string) (*model.StorageLocation, error)

	// Delete removes a location. When food items still reference it and force
	// is false, a *ConflictError carrying the referencing count is returned
	// and nothing changes. With force, the references are cleared first.
	Delete(ctx context.Context, id string, force bool) error
}

type locationService struct {
	repo     repository.LocationRepository
	validate *validator.Validate
}

// NewLocationService constructs a new LocationService.
func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *locationService) checkName(name string) error {
	if err := s.validate.Var(name, "required"); err != nil {
		return &ValidationError{Message: "Location name is required"}
	}
	return nil
}

func (s *locationService) List(ctx context.Context) ([]model.StorageLocation, error) {
	return s.repo.List(ctx)
}

func (s *locationService) Create(ctx context.Context, name string) (*model.StorageLocation, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.StorageLocation{Name: name})
}

func (s *locationService) Update(ctx context.Context, id, name string) (*model.StorageLocation, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}
	loc, err := s.repo.Update(ctx, &model.StorageLocation{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *locationService) Delete(ctx context.Context, id string, force bool) error {
	_, err := s.repo.Delete(ctx, id, force)
	if err != nil {
		var inUse *repository.InUseError
		switch {
		case errors.As(err, &inUse):
			return &ConflictError{
				Message:    locationInUseMessage,
				ItemsCount: inUse.ItemsCount,
			}
		case errors.Is(err, repository.ErrNotFound):
			return ErrLocationNotFound
		}
		return err
	}
	return nil
}
