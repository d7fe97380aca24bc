// Package application stores project applications as one hash per project.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
)

// store is the consumer interface for applications (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
}

// Repo implements usecase/directory.ApplicationRepository.
type Repo struct {
	store store
}

// New creates an application repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save upserts an application keyed by the student's email.
func (r *Repo) Save(ctx context.Context, app project.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	key := applicationsKey(app.ProjectID)
	if err := r.store.HSet(ctx, key, map[string]string{app.StudentEmail: string(data)}); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// List returns a project's applications, oldest first.
func (r *Repo) List(ctx context.Context, projectID int) ([]project.Application, error) {
	key := applicationsKey(projectID)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}

	apps := make([]project.Application, 0, len(m))
	for email, raw := range m {
		var app project.Application
		if err := json.Unmarshal([]byte(raw), &app); err != nil {
			return nil, fmt.Errorf("decode application %s: %w", email, err)
		}
		apps = append(apps, app)
	}

	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].AppliedAt.Equal(apps[j].AppliedAt) {
			return apps[i].AppliedAt.Before(apps[j].AppliedAt)
		}
		return apps[i].StudentEmail < apps[j].StudentEmail
	})
	return apps, nil
}

// Withdraw removes a student's application.
func (r *Repo) Withdraw(ctx context.Context, projectID int, email string) error {
	key := applicationsKey(projectID)
	if err := r.store.HDel(ctx, key, email); err != nil {
		return fmt.Errorf("hdel %s: %w", key, err)
	}
	return nil
}

// mentorhub:applications:{projectID}
func applicationsKey(projectID int) string {
	return domain.KeyPrefix + "applications:" + strconv.Itoa(projectID)
}
