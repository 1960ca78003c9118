package handlers

import (
	"gorm.io/gorm"

	"taskflow-api/domain/services"
)

// Services carries everything the HTTP layer needs.
type Services struct {
	TaskService services.TaskService
	DB          *gorm.DB
	Version     string
}

// Handlers groups all HTTP handlers.
type Handlers struct {
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.DB, services.Version),
	}
}
