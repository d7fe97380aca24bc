// Package workspace holds the working state of a running project: its team and
// the tasks assigned to team members.
package workspace

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
)

// TaskStatus is the board column of a task.
type TaskStatus string

// Task statuses in board order.
const (
	Todo       TaskStatus = "todo"
	InProgress TaskStatus = "in-progress"
	Completed  TaskStatus = "completed"
)

// TaskStatuses lists every status in board order.
var TaskStatuses = []TaskStatus{Todo, InProgress, Completed}

// ParseTaskStatus validates a raw status.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	switch s {
	case Todo, InProgress, Completed:
		return s, nil
	default:
		return "", fmt.Errorf("%w: task status %q", domain.ErrInvalidStatus, raw)
	}
}

// Priority ranks tasks.
type Priority string

// Task priorities.
const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// Member is a student working on the project.
type Member struct {
	ID       int    `json:"id" yaml:"id" validate:"required,gt=0"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar"`
	Role     string `json:"role" yaml:"role"`
	JoinDate string `json:"join_date" yaml:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

// Task is one issue on the project board.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title" validate:"required"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Status      TaskStatus `json:"status" yaml:"status" validate:"oneof=todo in-progress completed"`
	Priority    Priority   `json:"priority" yaml:"priority" validate:"oneof=low medium high"`
	Assignee    string     `json:"assignee" yaml:"assignee" validate:"required"`
	DueDate     string     `json:"due_date" yaml:"due_date" validate:"required,datetime=2006-01-02"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
}

// TaskDraft is the caller-supplied part of a new task. Empty status and
// priority default to todo and medium.
type TaskDraft struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Status      TaskStatus `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Priority    Priority   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Assignee    string     `json:"assignee" validate:"required"`
	DueDate     string     `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// Workspace is the stored document of one project.
type Workspace struct {
	ProjectID int      `json:"project_id" yaml:"project_id" validate:"required,gt=0"`
	Team      []Member `json:"team" yaml:"team" validate:"dive"`
	Tasks     []Task   `json:"tasks" yaml:"tasks" validate:"dive"`
}

// Member returns the team member with the given name.
func (w Workspace) Member(name string) (Member, bool) {
	for _, m := range w.Team {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Field names of the task schema.
const (
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldAssignee    = "assignee"
	FieldTitle       = "title"
	FieldDescription = "description"
)

// TaskSchema exposes the filterable task fields.
var TaskSchema = field.MustSchema(
	field.TextOf(FieldStatus, func(t Task) string { return string(t.Status) }),
	field.TextOf(FieldPriority, func(t Task) string { return string(t.Priority) }),
	field.TextOf(FieldAssignee, func(t Task) string { return t.Assignee }),
	field.TextOf(FieldTitle, func(t Task) string { return t.Title }),
	field.NewText(FieldDescription, func(t Task) (string, bool) { return t.Description, t.Description != "" }),
)
