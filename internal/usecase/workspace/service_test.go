package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
)

// --- Mocks ---

type memWorkspaces struct {
	all []workspace.Workspace
}

func (m *memWorkspaces) Find(_ context.Context, fn func(workspace.Workspace) bool) (workspace.Workspace, error) {
	for _, w := range m.all {
		if fn(w) {
			return w, nil
		}
	}
	return workspace.Workspace{}, domain.ErrNotFound
}

func (m *memWorkspaces) Update(
	_ context.Context, fn func([]workspace.Workspace) ([]workspace.Workspace, error),
) error {
	next, err := fn(append([]workspace.Workspace(nil), m.all...))
	if err != nil {
		return err
	}
	m.all = next
	return nil
}

type memProjects struct{}

func (memProjects) Find(_ context.Context, fn func(project.Project) bool) (project.Project, error) {
	for _, p := range []project.Project{{ID: 1, Title: "E-commerce Website"}, {ID: 2, Title: "Weather App"}} {
		if fn(p) {
			return p, nil
		}
	}
	return project.Project{}, domain.ErrNotFound
}

func seedWorkspace() workspace.Workspace {
	return workspace.Workspace{
		ProjectID: 1,
		Team: []workspace.Member{
			{ID: 1, Name: "Alex Rodriguez", Role: "Full Stack Developer", JoinDate: "2024-01-15"},
			{ID: 2, Name: "Emily Johnson", Role: "UI/UX Designer", JoinDate: "2024-01-20"},
			{ID: 3, Name: "Michael Kim", Role: "Backend Developer", JoinDate: "2024-02-01"},
		},
		Tasks: []workspace.Task{
			{ID: "t1", Title: "Implement user authentication system", Status: workspace.Completed,
				Priority: workspace.High, Assignee: "Alex Rodriguez", DueDate: "2024-02-15"},
			{ID: "t2", Title: "Design responsive dashboard layout", Status: workspace.InProgress,
				Priority: workspace.Medium, Assignee: "Emily Johnson", DueDate: "2024-03-01"},
			{ID: "t3", Title: "Optimize database queries", Status: workspace.Todo,
				Priority: workspace.High, Assignee: "Michael Kim", DueDate: "2024-03-15"},
			{ID: "t4", Title: "Implement real-time notifications", Status: workspace.Todo,
				Priority: workspace.Medium, Assignee: "Alex Rodriguez", DueDate: "2024-03-20"},
		},
	}
}

func newTestService() (*Service, *memWorkspaces) {
	repo := &memWorkspaces{all: []workspace.Workspace{seedWorkspace()}}
	svc := New(repo, memProjects{})
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	svc.newID = func() string { return "new-task" }
	return svc, repo
}

func taskIDs(tasks []workspace.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

// --- Tasks ---

func TestTasks(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name       string
		criteria   filter.Criteria
		want       []string
		wantCounts map[workspace.TaskStatus]int
	}{
		{
			name:     "all",
			criteria: nil,
			want:     []string{"t1", "t2", "t3", "t4"},
			wantCounts: map[workspace.TaskStatus]int{
				workspace.Todo: 2, workspace.InProgress: 1, workspace.Completed: 1,
			},
		},
		{
			name:     "status",
			criteria: filter.Criteria{ByStatus: "todo"},
			want:     []string{"t3", "t4"},
			wantCounts: map[workspace.TaskStatus]int{
				workspace.Todo: 2, workspace.InProgress: 1, workspace.Completed: 1,
			},
		},
		{
			name:     "priority scopes counts",
			criteria: filter.Criteria{ByPriority: "high"},
			want:     []string{"t1", "t3"},
			wantCounts: map[workspace.TaskStatus]int{
				workspace.Todo: 1, workspace.InProgress: 0, workspace.Completed: 1,
			},
		},
		{
			name:     "assignee and status",
			criteria: filter.Criteria{ByAssignee: "Alex Rodriguez", ByStatus: "todo"},
			want:     []string{"t4"},
			wantCounts: map[workspace.TaskStatus]int{
				workspace.Todo: 1, workspace.InProgress: 0, workspace.Completed: 1,
			},
		},
		{
			name:     "search is case-insensitive",
			criteria: filter.Criteria{BySearch: "  IMPLEMENT "},
			want:     []string{"t1", "t4"},
			wantCounts: map[workspace.TaskStatus]int{
				workspace.Todo: 1, workspace.InProgress: 0, workspace.Completed: 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := svc.Tasks(context.Background(), 1, tt.criteria)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, taskIDs(board.Items)); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantCounts, board.Counts); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTasks_BoardFacets(t *testing.T) {
	svc, _ := newTestService()

	board, err := svc.Tasks(context.Background(), 1, filter.Criteria{ByStatus: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Alex Rodriguez", "Emily Johnson", "Michael Kim"}
	if diff := cmp.Diff(want, board.Assignees); diff != "" {
		t.Errorf("assignees mismatch (-want +got):\n%s", diff)
	}
	if board.Progress != 25 {
		t.Errorf("progress = %d, want 25", board.Progress)
	}
}

func TestTasks_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Tasks(ctx, 1, filter.Criteria{"owner": "Alex"}); !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Errorf("unknown filter: error = %v, want ErrInvalidCriteria", err)
	}
	if _, err := svc.Tasks(ctx, 1, filter.Criteria{ByStatus: "blocked"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("bad status: error = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.Tasks(ctx, 42, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown project: error = %v, want ErrNotFound", err)
	}
}

func TestTasks_ProjectWithoutWorkspace(t *testing.T) {
	svc, _ := newTestService()

	board, err := svc.Tasks(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Items == nil || len(board.Items) != 0 || board.Progress != 0 {
		t.Errorf("board = %+v, want empty", board)
	}
}

// --- CreateTask ---

func TestCreateTask(t *testing.T) {
	svc, repo := newTestService()

	got, err := svc.CreateTask(context.Background(), 1, workspace.TaskDraft{
		Title:    "  Write API docs ",
		Assignee: "Michael Kim",
		DueDate:  "2024-04-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := workspace.Task{
		ID:        "new-task",
		Title:     "Write API docs",
		Status:    workspace.Todo,
		Priority:  workspace.Medium,
		Assignee:  "Michael Kim",
		DueDate:   "2024-04-01",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}

	tasks := repo.all[0].Tasks
	if len(tasks) != 5 || tasks[4].ID != "new-task" {
		t.Errorf("stored tasks = %v", taskIDs(tasks))
	}
}

func TestCreateTask_Errors(t *testing.T) {
	valid := workspace.TaskDraft{Title: "Write tests", Assignee: "Emily Johnson", DueDate: "2024-04-01"}

	tests := []struct {
		name      string
		projectID int
		mutate    func(*workspace.TaskDraft)
		wantErr   error
	}{
		{"missing title", 1, func(d *workspace.TaskDraft) { d.Title = "   " }, domain.ErrInvalidRecord},
		{"missing assignee", 1, func(d *workspace.TaskDraft) { d.Assignee = "" }, domain.ErrInvalidRecord},
		{"bad due date", 1, func(d *workspace.TaskDraft) { d.DueDate = "next week" }, domain.ErrInvalidRecord},
		{"bad priority", 1, func(d *workspace.TaskDraft) { d.Priority = "urgent" }, domain.ErrInvalidRecord},
		{"assignee not on team", 1, func(d *workspace.TaskDraft) { d.Assignee = "Sarah Wilson" }, domain.ErrInvalidRecord},
		{"project without team", 2, func(*workspace.TaskDraft) {}, domain.ErrInvalidRecord},
		{"unknown project", 42, func(*workspace.TaskDraft) {}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			d := valid
			tt.mutate(&d)
			if _, err := svc.CreateTask(context.Background(), tt.projectID, d); !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(repo.all[0].Tasks) != 4 {
				t.Errorf("tasks changed on error: %v", taskIDs(repo.all[0].Tasks))
			}
		})
	}
}

// --- Team ---

func TestTeam(t *testing.T) {
	svc, _ := newTestService()

	team, err := svc.Team(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(team) != 3 || team[0].Name != "Alex Rodriguez" {
		t.Errorf("team = %+v", team)
	}

	empty, err := svc.Team(context.Background(), 2)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("Team(2) = (%+v, %v), want empty list", empty, err)
	}
	if _, err := svc.Team(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
