package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID        uuid.UUID    `gorm:"primaryKey;type:uuid" json:"id"`
	Title     string       `gorm:"not null" json:"title"`
	Status    TaskStatus   `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	Priority  TaskPriority `gorm:"type:varchar(10);not null;default:'medium';index" json:"priority"`
	DueDate   *time.Time   `gorm:"index" json:"dueDate"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}
