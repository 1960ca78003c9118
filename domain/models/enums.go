package models

// TaskStatus is a closed, case-sensitive enumeration. Values outside the set
// never reach the store; validation is the sole gate.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists the valid statuses in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusDone}
}

// TaskStatusValues returns the valid statuses as plain strings, for error
// payloads and enum membership messages.
func TaskStatusValues() []string {
	statuses := TaskStatuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the human-readable display name.
func (s TaskStatus) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ColorClass returns the UI color token associated with the status.
func (s TaskStatus) ColorClass() string {
	switch s {
	case StatusTodo:
		return "gray"
	case StatusInProgress:
		return "blue"
	case StatusDone:
		return "green"
	}
	return "gray"
}

// TaskPriority is a closed, case-sensitive enumeration.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskPriorities lists the valid priorities in ascending order.
func TaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
}

// TaskPriorityValues returns the valid priorities as plain strings.
func TaskPriorityValues() []string {
	priorities := TaskPriorities()
	values := make([]string, len(priorities))
	for i, p := range priorities {
		values[i] = string(p)
	}
	return values
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the human-readable display name.
func (p TaskPriority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// ColorClass returns the UI color token associated with the priority.
func (p TaskPriority) ColorClass() string {
	switch p {
	case PriorityLow:
		return "green"
	case PriorityMedium:
		return "yellow"
	case PriorityHigh:
		return "red"
	}
	return "gray"
}
