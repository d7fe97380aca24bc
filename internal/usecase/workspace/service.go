// Package workspace serves the project detail view: the task board and the team.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/progress"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/logger"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
	"github.com/kailas-cloud/mentorhub/internal/validate"
)

// Criteria keys accepted when listing tasks.
const (
	ByStatus   = "status"
	ByPriority = "priority"
	ByAssignee = "assignee"
	BySearch   = "search"
)

// TaskEngine filters a project's tasks.
var TaskEngine = search.MustEngine(workspace.TaskSchema,
	filter.Search(BySearch, workspace.FieldTitle, workspace.FieldDescription),
	filter.Equal(ByAssignee, workspace.FieldAssignee),
	filter.Equal(ByPriority, workspace.FieldPriority),
	filter.Equal(ByStatus, workspace.FieldStatus),
)

// Board is the filtered task list of one project.
type Board struct {
	Items []workspace.Task `json:"items"`
	// Counts sizes every status column under the non-status criteria.
	Counts    map[workspace.TaskStatus]int `json:"counts"`
	Assignees []string                     `json:"assignees"`
	Progress  int                          `json:"progress"`
}

// Service manages project workspaces.
type Service struct {
	workspaces WorkspaceRepository
	projects   ProjectReader
	now        func() time.Time
	newID      func() string
}

// New creates a workspace service.
func New(workspaces WorkspaceRepository, projects ProjectReader) *Service {
	return &Service{
		workspaces: workspaces,
		projects:   projects,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Tasks returns the tasks of a project matching c. Progress is the share of
// completed tasks over the whole board.
func (s *Service) Tasks(ctx context.Context, projectID int, c filter.Criteria) (Board, error) {
	if unknown := TaskEngine.Unknown(c); len(unknown) > 0 {
		return Board{}, fmt.Errorf("%w: unknown filter %s", domain.ErrInvalidCriteria, strings.Join(unknown, ", "))
	}
	if raw := c.Get(ByStatus); raw != "" {
		if _, err := workspace.ParseTaskStatus(raw); err != nil {
			return Board{}, err
		}
	}

	w, err := s.load(ctx, projectID)
	if err != nil {
		return Board{}, err
	}

	started := time.Now()
	scoped := TaskEngine.Apply(w.Tasks, c.Without(ByStatus))
	items := TaskEngine.Apply(scoped, filter.Criteria{ByStatus: c.Get(ByStatus)})
	metrics.ObserveFilter("tasks", started, len(items))

	counts := make(map[workspace.TaskStatus]int, len(workspace.TaskStatuses))
	for _, st := range workspace.TaskStatuses {
		counts[st] = 0
	}
	for value, n := range TaskEngine.Facets(scoped, workspace.FieldStatus).Counts() {
		counts[workspace.TaskStatus(value)] = n
	}

	all := TaskEngine.Facets(w.Tasks, workspace.FieldStatus)
	return Board{
		Items:     items,
		Counts:    counts,
		Assignees: TaskEngine.Facets(w.Tasks, workspace.FieldAssignee).Values(),
		Progress:  progress.Percentage(float64(all.Count(string(workspace.Completed))), float64(len(w.Tasks))),
	}, nil
}

// CreateTask adds a task to a project board. The assignee must be on the team.
func (s *Service) CreateTask(ctx context.Context, projectID int, draft workspace.TaskDraft) (workspace.Task, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Assignee = strings.TrimSpace(draft.Assignee)
	if err := validate.Struct(draft); err != nil {
		return workspace.Task{}, err
	}
	if _, err := s.project(ctx, projectID); err != nil {
		return workspace.Task{}, err
	}

	task := workspace.Task{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		Assignee:    draft.Assignee,
		DueDate:     draft.DueDate,
		CreatedAt:   s.now().UTC(),
	}
	if task.Status == "" {
		task.Status = workspace.Todo
	}
	if task.Priority == "" {
		task.Priority = workspace.Medium
	}

	err := s.workspaces.Update(ctx, func(all []workspace.Workspace) ([]workspace.Workspace, error) {
		for i := range all {
			if all[i].ProjectID != projectID {
				continue
			}
			if _, ok := all[i].Member(task.Assignee); !ok {
				return nil, fmt.Errorf("%w: %s is not on the team of project %d",
					domain.ErrInvalidRecord, task.Assignee, projectID)
			}
			all[i].Tasks = append(all[i].Tasks, task)
			return all, nil
		}
		return nil, fmt.Errorf("%w: project %d has no team", domain.ErrInvalidRecord, projectID)
	})
	if err != nil {
		return workspace.Task{}, err
	}

	logger.FromContext(ctx).Info("task created",
		zap.String("task_id", task.ID), zap.Int("project_id", projectID))
	return task, nil
}

// Team lists the students working on a project.
func (s *Service) Team(ctx context.Context, projectID int) ([]workspace.Member, error) {
	w, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return w.Team, nil
}

// load returns the workspace of a catalog project. A project nobody has started
// yet has an empty workspace.
func (s *Service) load(ctx context.Context, projectID int) (workspace.Workspace, error) {
	if _, err := s.project(ctx, projectID); err != nil {
		return workspace.Workspace{}, err
	}
	w, err := s.workspaces.Find(ctx, func(w workspace.Workspace) bool { return w.ProjectID == projectID })
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w = workspace.Workspace{ProjectID: projectID}
	case err != nil:
		return workspace.Workspace{}, fmt.Errorf("get workspace %d: %w", projectID, err)
	}
	if w.Team == nil {
		w.Team = []workspace.Member{}
	}
	if w.Tasks == nil {
		w.Tasks = []workspace.Task{}
	}
	return w, nil
}

func (s *Service) project(ctx context.Context, id int) (project.Project, error) {
	p, err := s.projects.Find(ctx, func(p project.Project) bool { return p.ID == id })
	if err != nil {
		return project.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}
