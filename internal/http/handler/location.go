package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodkeeper/internal/service"
)

type locationRequest struct {
	Name string `json:"name"`
}

// ListLocations returns all storage locations.
func ListLocations(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locations, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(locations)
	}
}

// CreateLocation registers a new storage location.
func CreateLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		loc, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(loc)
	}
}

// UpdateLocation renames a storage location.
func UpdateLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		loc, err := svc.Update(c.UserContext(), c.Params("id"), req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(loc)
	}
}

// DeleteLocation removes a storage location. Without ?forceDelete=true a
// location still referenced by items is refused with a conflict body carrying
// the referencing item count.
func DeleteLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		force := c.Query("forceDelete") == "true"
		if err := svc.Delete(c.UserContext(), c.Params("id"), force); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
