package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodkeeper/internal/model"
	"foodkeeper/internal/service"
)

// foodItemRequest is the wire shape shared by create and update.
type foodItemRequest struct {
	Name             string      `json:"name"`
	ExpiryDate       *model.Date `json:"expiryDate"`
	RegistrationDate *model.Date `json:"registrationDate"`
	LocationID       *string     `json:"locationId"`
	HasNoExpiry      bool        `json:"hasNoExpiry"`
}

func (r foodItemRequest) input() service.FoodItemInput {
	return service.FoodItemInput{
		Name:             r.Name,
		ExpiryDate:       r.ExpiryDate,
		RegistrationDate: r.RegistrationDate,
		LocationID:       r.LocationID,
		HasNoExpiry:      r.HasNoExpiry,
	}
}

// ListFoodItems returns all items, optionally filtered by ?locationId=.
func ListFoodItems(svc service.FoodItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), c.Query("locationId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateFoodItem registers a new item and returns it with its assigned ID.
func CreateFoodItem(svc service.FoodItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req foodItemRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := svc.Create(c.UserContext(), req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// UpdateFoodItem replaces an existing item wholesale.
func UpdateFoodItem(svc service.FoodItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req foodItemRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := svc.Update(c.UserContext(), c.Params("id"), req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(item)
	}
}

// DeleteFoodItem removes an item by ID.
func DeleteFoodItem(svc service.FoodItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// LocationStats returns the number of items per location ID. Items without a
// location are reported under the 未分類 key.
func LocationStats(svc service.FoodItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.LocationStats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}
