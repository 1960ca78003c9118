package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	for _, s := range TaskStatuses() {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	// Membership is case-sensitive.
	invalid := []string{"todo", "Todo", "done", "in_progress", "CANCELLED", ""}
	for _, s := range invalid {
		assert.False(t, TaskStatus(s).Valid(), "status %q should be invalid", s)
	}
}

func TestTaskPriorityValid(t *testing.T) {
	for _, p := range TaskPriorities() {
		assert.True(t, p.Valid(), "priority %q should be valid", p)
	}

	invalid := []string{"LOW", "Medium", "HIGH", "urgent", ""}
	for _, p := range invalid {
		assert.False(t, TaskPriority(p).Valid(), "priority %q should be invalid", p)
	}
}

func TestTaskStatusValues(t *testing.T) {
	assert.Equal(t, []string{"TODO", "IN_PROGRESS", "DONE"}, TaskStatusValues())
}

func TestTaskPriorityValues(t *testing.T) {
	assert.Equal(t, []string{"low", "medium", "high"}, TaskPriorityValues())
}

func TestStatusDisplayMetadata(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "blue", StatusInProgress.ColorClass())
	assert.Equal(t, "To Do", StatusTodo.Label())
	assert.Equal(t, "green", StatusDone.ColorClass())
}

func TestPriorityDisplayMetadata(t *testing.T) {
	assert.Equal(t, "High", PriorityHigh.Label())
	assert.Equal(t, "red", PriorityHigh.ColorClass())
	assert.Equal(t, "yellow", PriorityMedium.ColorClass())
}
