package services

import (
	"context"

	"github.com/google/uuid"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
)

type TaskService interface {
	// ListTasks validates the raw query parameters, resolves the date filter
	// and returns the matching page plus pagination metadata.
	ListTasks(ctx context.Context, query dto.TaskListQuery) (*dto.TaskPage, error)
	CreateTask(ctx context.Context, draft *dto.TaskDraft) (*models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch *dto.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}
