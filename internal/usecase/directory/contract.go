package directory

import (
	"context"

	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
)

// MentorRepository reads the mentor directory.
type MentorRepository interface {
	All(ctx context.Context) ([]mentor.Mentor, error)
	Find(ctx context.Context, fn func(mentor.Mentor) bool) (mentor.Mentor, error)
}

// ProjectRepository reads the project catalog.
type ProjectRepository interface {
	All(ctx context.Context) ([]project.Project, error)
	Find(ctx context.Context, fn func(project.Project) bool) (project.Project, error)
}

// ApplicationRepository stores project applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app project.Application) error
	List(ctx context.Context, projectID int) ([]project.Application, error)
	Withdraw(ctx context.Context, projectID int, email string) error
}
