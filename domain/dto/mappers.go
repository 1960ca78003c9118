package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/domain/models"
)

type TaskResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"dueDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func TaskToResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		DueDate:   task.DueDate,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

func TasksToResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToResponse(task)
	}
	return responses
}

// EnumOption is one enumeration member with its display metadata.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TaskOptionsResponse lists the valid enumeration values for clients that
// render pickers, including the date filters the list endpoint accepts.
type TaskOptionsResponse struct {
	Statuses    []EnumOption `json:"statuses"`
	Priorities  []EnumOption `json:"priorities"`
	DateFilters []string     `json:"dateFilters"`
}

func NewTaskOptionsResponse() *TaskOptionsResponse {
	resp := &TaskOptionsResponse{DateFilters: models.DateFilterValues()}
	for _, s := range models.TaskStatuses() {
		resp.Statuses = append(resp.Statuses, EnumOption{
			Value: string(s),
			Label: s.Label(),
			Color: s.ColorClass(),
		})
	}
	for _, p := range models.TaskPriorities() {
		resp.Priorities = append(resp.Priorities, EnumOption{
			Value: string(p),
			Label: p.Label(),
			Color: p.ColorClass(),
		})
	}
	return resp
}
