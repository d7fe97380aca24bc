package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/config"
	"github.com/kailas-cloud/mentorhub/internal/db"
	"github.com/kailas-cloud/mentorhub/internal/db/embedded"
	dbRedis "github.com/kailas-cloud/mentorhub/internal/db/redis"
	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/repository/record"
	"github.com/kailas-cloud/mentorhub/internal/seed"
)

// openStore creates the store selected by the database driver.
func openStore(cfg config.DatabaseConfig, logger *zap.Logger) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverEmbedded:
		s, err := embedded.NewStore(embedded.Config{
			Path:           cfg.Path,
			SyncWrites:     cfg.Path != "",
			GCInterval:     time.Duration(cfg.GCIntervalSec) * time.Second,
			GCDiscardRatio: cfg.GCDiscardRatio,
			Logger:         logger,
		})
		if err != nil {
			return nil, fmt.Errorf("open embedded store: %w", err)
		}
		return s, nil
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Addrs,
			Password:   cfg.Password,
			DB:         cfg.DB,
			ClientName: "mentorhub",
		})
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// repositories are the record collections kept in the store.
type repositories struct {
	mentors  *record.Repo[mentor.Mentor]
	projects *record.Repo[project.Project]
	requests *record.Repo[mentorship.Request]
	students *record.Repo[student.Student]

	workspaces *record.Repo[workspace.Workspace]
	profiles   *record.Repo[profile.Profile]
}

func newRepositories(s db.Store) repositories {
	return repositories{
		mentors:  record.New[mentor.Mentor](s, domain.MentorsKey),
		projects: record.New[project.Project](s, domain.ProjectsKey),
		requests: record.New[mentorship.Request](s, domain.RequestsKey),
		students: record.New[student.Student](s, domain.StudentsKey),

		workspaces: record.New[workspace.Workspace](s, domain.WorkspacesKey),
		profiles:   record.New[profile.Profile](s, domain.ProfilesKey),
	}
}

func (r repositories) targets() seed.Targets {
	return seed.Targets{
		Mentors:  r.mentors,
		Projects: r.projects,
		Requests: r.requests,
		Students: r.students,

		Workspaces: r.workspaces,
		Profiles:   r.profiles,
	}
}

// bootstrap loads the seed file according to the seed mode. It reports
// whether the store was written.
func bootstrap(ctx context.Context, cfg config.SeedConfig, t seed.Targets, logger *zap.Logger) (bool, error) {
	if cfg.Mode == config.SeedNever {
		return false, nil
	}
	if cfg.Mode == config.SeedIfEmpty {
		seeded, err := seed.Seeded(ctx, t)
		if err != nil {
			return false, fmt.Errorf("check seed: %w", err)
		}
		if seeded {
			logger.Info("Store already seeded, skipping", zap.String("path", cfg.Path))
			return false, nil
		}
	}

	started := time.Now()
	data, err := seed.LoadFile(cfg.Path)
	if err != nil {
		return false, err
	}
	if err := seed.Write(ctx, data, t); err != nil {
		return false, err
	}
	logger.Info("Seed loaded",
		zap.String("path", cfg.Path),
		zap.Int("mentors", len(data.Mentors)),
		zap.Int("projects", len(data.Projects)),
		zap.Int("requests", len(data.Requests)),
		zap.Int("students", len(data.Students)),
		zap.Int("workspaces", len(data.Workspaces)),
		zap.Int("profiles", len(data.Profiles)),
		zap.Duration("took", time.Since(started)),
	)
	return true, nil
}
