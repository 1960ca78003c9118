package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskflow-api/pkg/logger"
)

type HealthHandler struct {
	db        *gorm.DB
	version   string
	startedAt time.Time
}

func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

// Health reports store reachability, version and uptime. 503 when the
// database does not answer a ping.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	overall := "ok"
	dbStatus := "up"
	status := fiber.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		logger.WarnContext(c.UserContext(), "Health check failed", "error", err)
		overall = "unavailable"
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"version":  h.version,
		"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
		"database": dbStatus,
	})
}
