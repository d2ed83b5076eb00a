package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	HealthHandler interface {
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		db *gorm.DB
	}
)

func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{db: db}
}

// Health round-trips a trivial query through the connection pool.
func (h *healthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.WithContext(c.UserContext()).Exec("SELECT 1").Error; err != nil {
		log.Errorw("database connection failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "db": "connected"})
}
