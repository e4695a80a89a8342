package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodkeeper/internal/model"
	"foodkeeper/internal/service"
)

// ExportData returns the full dataset as a download.
func ExportData(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Export(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="food-expiry-data.json"`)
		return c.JSON(snap)
	}
}

// ImportData replaces the full dataset with the posted snapshot.
func ImportData(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var snap model.Snapshot
		if err := c.BodyParser(&snap); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid data format")
		}

		if err := svc.Import(c.UserContext(), &snap); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Data imported successfully"})
	}
}

// BackupData archives the current dataset to object storage and returns the
// object key.
func BackupData(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := svc.Backup(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"key": key})
	}
}

type restoreRequest struct {
	Key string `json:"key"`
}

// RestoreBackup replaces the dataset with an archived snapshot.
func RestoreBackup(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req restoreRequest
		if err := c.BodyParser(&req); err != nil || req.Key == "" {
			return writeError(c, fiber.StatusBadRequest, "Backup key is required")
		}

		if err := svc.RestoreBackup(c.UserContext(), req.Key); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Backup restored successfully"})
	}
}
