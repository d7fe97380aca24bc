package workspace

import (
	"context"

	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
)

// WorkspaceRepository stores project workspaces.
type WorkspaceRepository interface {
	Find(ctx context.Context, fn func(workspace.Workspace) bool) (workspace.Workspace, error)
	Update(ctx context.Context, fn func([]workspace.Workspace) ([]workspace.Workspace, error)) error
}

// ProjectReader resolves the catalog entry a workspace belongs to.
type ProjectReader interface {
	Find(ctx context.Context, fn func(project.Project) bool) (project.Project, error)
}
