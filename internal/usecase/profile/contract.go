package profile

import (
	"context"

	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
)

// ProfileRepository reads stored profiles.
type ProfileRepository interface {
	All(ctx context.Context) ([]profile.Profile, error)
	Find(ctx context.Context, fn func(profile.Profile) bool) (profile.Profile, error)
}
