package mentorship

import (
	"context"

	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
)

// RequestRepository stores mentorship requests.
type RequestRepository interface {
	All(ctx context.Context) ([]mentorship.Request, error)
	Update(ctx context.Context, fn func([]mentorship.Request) ([]mentorship.Request, error)) error
}

// MentorReader resolves the mentor a request is addressed to.
type MentorReader interface {
	Find(ctx context.Context, fn func(mentor.Mentor) bool) (mentor.Mentor, error)
}
