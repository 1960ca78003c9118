package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskflow-api/domain/models"
)

// TaskFilter is the conjunctive predicate for list and count: a task matches
// only if it satisfies every non-nil constraint.
type TaskFilter struct {
	Status   *models.TaskStatus
	Priority *models.TaskPriority
	Due      models.DateRange
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// List returns one page ordered by dueDate ascending (tasks without a due
	// date last) with createdAt descending as tie-break.
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]*models.Task, error)
	// Count observes the same predicate as List, unaffected by pagination.
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
