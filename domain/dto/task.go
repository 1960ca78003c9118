package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskflow-api/domain/apperrors"
	"taskflow-api/domain/models"
)

// CreateTaskRequest is the POST /tasks body. Pointer fields keep "omitted"
// distinguishable from zero values; dueDate additionally distinguishes
// explicit null.
type CreateTaskRequest struct {
	Title    *string      `json:"title" validate:"omitempty,max=200"`
	Status   *string      `json:"status"`
	Priority *string      `json:"priority"`
	DueDate  OptionalDate `json:"dueDate"`
}

// UpdateTaskRequest is the PATCH /tasks/:id body. Every field is optional;
// only supplied fields are applied.
type UpdateTaskRequest struct {
	Title    *string      `json:"title" validate:"omitempty,max=200"`
	Status   *string      `json:"status"`
	Priority *string      `json:"priority"`
	DueDate  OptionalDate `json:"dueDate"`
}

// TaskDraft is the normalized create payload: trimmed title, defaults applied,
// safe to persist.
type TaskDraft struct {
	Title    string
	Status   models.TaskStatus
	Priority models.TaskPriority
	DueDate  *time.Time
}

// TaskPatch is the normalized partial-update payload. Nil fields were not
// supplied and must be left untouched. ClearDueDate records an explicit null.
type TaskPatch struct {
	Title        *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	DueDate      *time.Time
	ClearDueDate bool
}

// Normalize runs the ordered validation stage: title, then status, then
// priority, then dueDate. The first failure wins.
func (r *CreateTaskRequest) Normalize() (*TaskDraft, error) {
	title, err := requireTitle(r.Title)
	if err != nil {
		return nil, err
	}

	draft := &TaskDraft{
		Title:    title,
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	}

	if r.Status != nil {
		status := models.TaskStatus(*r.Status)
		if !status.Valid() {
			return nil, apperrors.NewEnumError("status", *r.Status, models.TaskStatusValues())
		}
		draft.Status = status
	}

	if r.Priority != nil {
		priority := models.TaskPriority(*r.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewEnumError("priority", *r.Priority, models.TaskPriorityValues())
		}
		draft.Priority = priority
	}

	due, _, err := normalizeDueDate(r.DueDate)
	if err != nil {
		return nil, err
	}
	draft.DueDate = due

	return draft, nil
}

// Normalize validates the supplied fields in the same order as create and
// produces a patch that omits everything the caller did not send.
func (r *UpdateTaskRequest) Normalize() (*TaskPatch, error) {
	patch := &TaskPatch{}

	if r.Title != nil {
		title, err := requireTitle(r.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}

	if r.Status != nil {
		status := models.TaskStatus(*r.Status)
		if !status.Valid() {
			return nil, apperrors.NewEnumError("status", *r.Status, models.TaskStatusValues())
		}
		patch.Status = &status
	}

	if r.Priority != nil {
		priority := models.TaskPriority(*r.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewEnumError("priority", *r.Priority, models.TaskPriorityValues())
		}
		patch.Priority = &priority
	}

	due, cleared, err := normalizeDueDate(r.DueDate)
	if err != nil {
		return nil, err
	}
	patch.DueDate = due
	patch.ClearDueDate = cleared

	return patch, nil
}

func requireTitle(title *string) (string, error) {
	if title == nil {
		return "", apperrors.NewValidationError("title", "title is required and must be a non-empty string")
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return "", apperrors.NewValidationError("title", "title is required and must be a non-empty string")
	}
	return trimmed, nil
}

func normalizeDueDate(d OptionalDate) (value *time.Time, cleared bool, err error) {
	if !d.Present {
		return nil, false, nil
	}
	if d.Null {
		return nil, true, nil
	}
	if d.WrongType || d.Invalid {
		ve := apperrors.NewValidationError("dueDate", "dueDate must be a valid date")
		ve.ReceivedValue = d.Raw
		return nil, false, ve
	}
	return d.Value, false, nil
}

// TaskListQuery carries the raw GET /tasks query parameters. The query
// service owns their validation.
type TaskListQuery struct {
	Status     string `query:"status"`
	Priority   string `query:"priority"`
	DateFilter string `query:"dateFilter"`
	Page       string `query:"page"`
	Limit      string `query:"limit"`
}

// TaskPage is a page of tasks plus the pagination metadata computed against
// the same filter predicate.
type TaskPage struct {
	Tasks      []*models.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BindError translates a JSON decoding failure into a field-level validation
// error when the offending field is known, so type mismatches like a numeric
// status surface the same way enum mismatches do.
func BindError(err error) *apperrors.ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field, typeErr.Field+" has an invalid type")
	}
	return apperrors.NewValidationError("", "invalid request body")
}
