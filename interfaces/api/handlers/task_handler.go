package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskflow-api/domain/apperrors"
	"taskflow-api/domain/dto"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := dto.TaskListQuery{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		DateFilter: c.Query("dateFilter"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}

	page, err := h.taskService.ListTasks(ctx, query)
	if err != nil {
		if ve, ok := apperrors.AsValidation(err); ok {
			logger.WarnContext(ctx, "Invalid list query", "field", ve.Field, "error", ve.Message)
			return utils.ValidationErrorResponse(c, ve)
		}
		logger.ErrorContext(ctx, "Failed to retrieve tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToResponses(page.Tasks),
		page.Total, page.Page, page.Limit, page.TotalPages)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, dto.BindError(err))
	}

	draft, err := req.Normalize()
	if err != nil {
		ve, _ := apperrors.AsValidation(err)
		logger.WarnContext(ctx, "Task validation failed", "field", ve.Field, "error", ve.Message)
		return utils.ValidationErrorResponse(c, ve)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		ve := utils.GetValidationError(err)
		logger.WarnContext(ctx, "Task validation failed", "field", ve.Field, "error", ve.Message)
		return utils.ValidationErrorResponse(c, ve)
	}

	task, err := h.taskService.CreateTask(ctx, draft)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, dto.BindError(err))
	}

	patch, err := req.Normalize()
	if err != nil {
		ve, _ := apperrors.AsValidation(err)
		logger.WarnContext(ctx, "Task validation failed", "task_id", taskID, "field", ve.Field, "error", ve.Message)
		return utils.ValidationErrorResponse(c, ve)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		ve := utils.GetValidationError(err)
		logger.WarnContext(ctx, "Task validation failed", "task_id", taskID, "field", ve.Field, "error", ve.Message)
		return utils.ValidationErrorResponse(c, ve)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

// TaskOptions serves the enumeration values with their display metadata for
// clients that render status/priority pickers.
func (h *TaskHandler) TaskOptions(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, dto.NewTaskOptionsResponse())
}
