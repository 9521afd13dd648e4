package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Status represents the workflow state of a task.
type Status int

// Possible task status values
const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
	StatusCancelled
)

// IsValid checks if the status is a declared member of the enumeration.
// Membership is a closed-set test over the named variants, not a numeric
// range check, so adding or removing a variant changes validation in one
// place only.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Priority represents the urgency of a task.
type Priority int

// Possible task priority values
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// IsValid checks if the priority is a declared member of the enumeration.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Validation messages produced by Validate. The exact text is part of the
// public contract: transports classify failures by matching against these
// strings, so they must never be reworded casually.
const (
	MsgTitleRequired      = "Title is required."
	MsgTitleTooLong       = "Title cannot exceed 100 characters."
	MsgInvalidStatus      = "Invalid status value."
	MsgInvalidPriority    = "Invalid priority value."
	MsgCreatedAtRequired  = "CreatedAt is required."
	MsgDescriptionTooLong = "Description cannot exceed 500 characters."
	MsgDueDateInPast      = "Due date cannot be in the past."
	MsgCompletedAtInvalid = "CompletedAt must be after CreatedAt."
	MsgUpdatedAtInvalid   = "UpdatedAt must be after CreatedAt."
)

// Field length limits enforced by Validate, in runes.
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// TaskItem represents a single unit of work tracked by the system.
// It carries a soft-delete flag instead of ever being physically erased:
// deleted rows stay stored but are invisible to normal reads until restored.
type TaskItem struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	IsDeleted   bool       `json:"is_deleted"`
}

// NewTaskItem creates a task with a fresh ID, the given fields, and
// CreatedAt set to the current UTC time. The result is a candidate, not a
// guaranteed-legal task: callers run Validate before persisting.
func NewTaskItem(title, description string, status Status, priority Priority) TaskItem {
	return TaskItem{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsActive reports whether the task is visible to normal reads. Every read
// path filters on this single predicate so active/deleted visibility cannot
// drift between lookups.
func (t TaskItem) IsActive() bool {
	return !t.IsDeleted
}

// Validate checks every field rule and returns all violations in declaration
// order. It never short-circuits: a caller gets the complete list in one
// pass. An empty slice means the task is acceptable. Validate has no side
// effects and never mutates the task.
func (t TaskItem) Validate() []string {
	var violations []string

	if strings.TrimSpace(t.Title) == "" {
		violations = append(violations, MsgTitleRequired)
	}

	if utf8.RuneCountInString(t.Title) > TitleMaxLength {
		violations = append(violations, MsgTitleTooLong)
	}

	if !t.Status.IsValid() {
		violations = append(violations, MsgInvalidStatus)
	}

	if !t.Priority.IsValid() {
		violations = append(violations, MsgInvalidPriority)
	}

	if t.CreatedAt.IsZero() {
		violations = append(violations, MsgCreatedAtRequired)
	}

	if utf8.RuneCountInString(t.Description) > DescriptionMaxLength {
		violations = append(violations, MsgDescriptionTooLong)
	}

	if t.DueDate != nil && startOfDay(t.DueDate.UTC()).Before(startOfDay(time.Now().UTC())) {
		violations = append(violations, MsgDueDateInPast)
	}

	if t.CompletedAt != nil && !t.CompletedAt.After(t.CreatedAt) {
		violations = append(violations, MsgCompletedAtInvalid)
	}

	if t.UpdatedAt != nil && !t.UpdatedAt.After(t.CreatedAt) {
		violations = append(violations, MsgUpdatedAtInvalid)
	}

	return violations
}

// startOfDay truncates a timestamp to midnight of its UTC calendar day.
// Due dates compare date-only: any time of day on the current day still
// counts as "today", not "the past".
func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// validationMessages is the closed set of texts Validate can produce.
var validationMessages = map[string]struct{}{
	MsgTitleRequired:      {},
	MsgTitleTooLong:       {},
	MsgInvalidStatus:      {},
	MsgInvalidPriority:    {},
	MsgCreatedAtRequired:  {},
	MsgDescriptionTooLong: {},
	MsgDueDateInPast:      {},
	MsgCompletedAtInvalid: {},
	MsgUpdatedAtInvalid:   {},
}

// IsValidationMessage reports whether msg is one of the fixed validation
// texts. Transports use it to tell user-correctable failures apart from
// not-found and storage failures.
func IsValidationMessage(msg string) bool {
	_, ok := validationMessages[msg]
	return ok
}
