// Package seed loads the YAML seed file and writes it to the store.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/validate"
)

// Data is the content of a seed file.
type Data struct {
	Mentors  []mentor.Mentor      `yaml:"mentors" json:"mentors" validate:"dive"`
	Projects []project.Project    `yaml:"projects" json:"projects" validate:"dive"`
	Requests []mentorship.Request `yaml:"requests" json:"requests" validate:"dive"`
	Students []student.Student    `yaml:"students" json:"students" validate:"dive"`

	Workspaces []workspace.Workspace `yaml:"workspaces" json:"workspaces" validate:"dive"`
	Profiles   []profile.Profile     `yaml:"profiles" json:"profiles" validate:"dive"`
}

// LoadFile reads and validates a seed file.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Data{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	d, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Data{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates seed YAML. Unknown keys are rejected. Requests
// and tasks without an id get a fresh one.
func Parse(r io.Reader) (Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Data
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Data{}, fmt.Errorf("decode: %w", err)
	}

	for i := range d.Requests {
		if d.Requests[i].ID == "" {
			d.Requests[i].ID = uuid.NewString()
		}
		if d.Requests[i].Status == "" {
			d.Requests[i].Status = mentorship.Pending
		}
	}
	for i := range d.Workspaces {
		tasks := d.Workspaces[i].Tasks
		for j := range tasks {
			if tasks[j].ID == "" {
				tasks[j].ID = uuid.NewString()
			}
			if tasks[j].Status == "" {
				tasks[j].Status = workspace.Todo
			}
			if tasks[j].Priority == "" {
				tasks[j].Priority = workspace.Medium
			}
		}
	}

	if err := validate.Struct(d); err != nil {
		return Data{}, err
	}
	if err := d.checkReferences(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (d Data) checkReferences() error {
	mentors := make(map[int]struct{}, len(d.Mentors))
	for _, m := range d.Mentors {
		if _, dup := mentors[m.ID]; dup {
			return fmt.Errorf("%w: duplicate mentor id %d", domain.ErrInvalidRecord, m.ID)
		}
		mentors[m.ID] = struct{}{}
	}
	if err := unique("project", d.Projects, func(p project.Project) int { return p.ID }); err != nil {
		return err
	}
	if err := unique("student", d.Students, func(s student.Student) int { return s.ID }); err != nil {
		return err
	}
	if err := unique("profile", d.Profiles, func(p profile.Profile) int { return p.ID }); err != nil {
		return err
	}
	if err := d.checkWorkspaces(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(d.Requests))
	for _, r := range d.Requests {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate request id %s", domain.ErrInvalidRecord, r.ID)
		}
		seen[r.ID] = struct{}{}
		if _, ok := mentors[r.MentorID]; !ok {
			return fmt.Errorf("%w: request %s references unknown mentor %d", domain.ErrInvalidRecord, r.ID, r.MentorID)
		}
	}
	return nil
}

func (d Data) checkWorkspaces() error {
	if err := unique("workspace", d.Workspaces, func(w workspace.Workspace) int { return w.ProjectID }); err != nil {
		return err
	}
	projects := make(map[int]struct{}, len(d.Projects))
	for _, p := range d.Projects {
		projects[p.ID] = struct{}{}
	}
	for _, w := range d.Workspaces {
		if _, ok := projects[w.ProjectID]; !ok {
			return fmt.Errorf("%w: workspace references unknown project %d", domain.ErrInvalidRecord, w.ProjectID)
		}
		for _, t := range w.Tasks {
			if _, ok := w.Member(t.Assignee); !ok {
				return fmt.Errorf("%w: task %q of project %d is assigned outside the team",
					domain.ErrInvalidRecord, t.Title, w.ProjectID)
			}
		}
	}
	return nil
}

func unique[R any](kind string, records []R, id func(R) int) error {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		k := id(r)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate %s id %d", domain.ErrInvalidRecord, kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Collection is a stored record collection.
type Collection[R any] interface {
	Replace(ctx context.Context, records []R) error
	Exists(ctx context.Context) (bool, error)
}

// Targets are the collections a seed is written to.
type Targets struct {
	Mentors  Collection[mentor.Mentor]
	Projects Collection[project.Project]
	Requests Collection[mentorship.Request]
	Students Collection[student.Student]

	Workspaces Collection[workspace.Workspace]
	Profiles   Collection[profile.Profile]
}

// Seeded reports whether the mentor directory has been written.
func Seeded(ctx context.Context, t Targets) (bool, error) {
	return t.Mentors.Exists(ctx)
}

// Write replaces every target collection concurrently.
func Write(ctx context.Context, d Data, t Targets) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return replace(ctx, "mentors", t.Mentors, d.Mentors) })
	g.Go(func() error { return replace(ctx, "projects", t.Projects, d.Projects) })
	g.Go(func() error { return replace(ctx, "requests", t.Requests, d.Requests) })
	g.Go(func() error { return replace(ctx, "students", t.Students, d.Students) })
	g.Go(func() error { return replace(ctx, "workspaces", t.Workspaces, d.Workspaces) })
	g.Go(func() error { return replace(ctx, "profiles", t.Profiles, d.Profiles) })
	return g.Wait()
}

func replace[R any](ctx context.Context, name string, c Collection[R], records []R) error {
	if err := c.Replace(ctx, records); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}
