package serviceimpl

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"taskflow-api/domain/apperrors"
	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/repositories"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	now      func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, query dto.TaskListQuery) (*dto.TaskPage, error) {
	page, err := parsePageParam(query.Page, "page", defaultPage, 0)
	if err != nil {
		return nil, err
	}
	limit, err := parsePageParam(query.Limit, "limit", defaultLimit, maxLimit)
	if err != nil {
		return nil, err
	}

	filter := repositories.TaskFilter{}

	if query.Status != "" {
		status := models.TaskStatus(query.Status)
		if !status.Valid() {
			return nil, apperrors.NewEnumError("status", query.Status, models.TaskStatusValues())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority := models.TaskPriority(query.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewEnumError("priority", query.Priority, models.TaskPriorityValues())
		}
		filter.Priority = &priority
	}

	if query.DateFilter != "" {
		dateFilter := models.DateFilter(query.DateFilter)
		if !dateFilter.Valid() {
			return nil, apperrors.NewEnumError("dateFilter", query.DateFilter, models.DateFilterValues())
		}
		filter.Due = dateFilter.Resolve(s.now())
	}

	offset := (page - 1) * limit
	tasks, err := s.taskRepo.List(ctx, filter, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, apperrors.Persistence(err)
	}

	total, err := s.taskRepo.Count(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "error", err)
		return nil, apperrors.Persistence(err)
	}

	return &dto.TaskPage{
		Tasks:      tasks,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, draft *dto.TaskDraft) (*models.Task, error) {
	now := s.now()
	task := &models.Task{
		ID:        uuid.New(),
		Title:     draft.Title,
		Status:    draft.Status,
		Priority:  draft.Priority,
		DueDate:   draft.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, apperrors.Persistence(err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "status", task.Status, "priority", task.Priority)
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, patch *dto.TaskPatch) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task not found for update", "task_id", id)
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to load task for update", "task_id", id, "error", err)
		return nil, apperrors.Persistence(err)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.ClearDueDate {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, apperrors.Persistence(err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", id)
			return err
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return apperrors.Persistence(err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

// parsePageParam parses a pagination query value: positive integer, default
// when absent, optional upper cap.
func parsePageParam(raw, field string, fallback, max int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		ve := apperrors.NewValidationError(field, field+" must be a positive integer")
		ve.ReceivedValue = raw
		return 0, ve
	}
	if max > 0 && value > max {
		ve := apperrors.NewValidationError(field, field+" must not exceed "+strconv.Itoa(max))
		ve.ReceivedValue = raw
		return 0, ve
	}
	return value, nil
}
