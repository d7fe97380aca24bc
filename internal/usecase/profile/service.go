// Package profile serves public student and mentor profiles.
package profile

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
)

// Criteria keys accepted when listing profiles.
const (
	ByRole   = "role"
	BySkill  = "skill"
	BySearch = "search"
)

// ProfileEngine filters profiles.
var ProfileEngine = search.MustEngine(profile.Schema,
	filter.Search(BySearch, profile.FieldName, profile.FieldBio, profile.FieldSkills),
	filter.Member(BySkill, profile.FieldSkills),
	filter.Equal(ByRole, profile.FieldRole),
)

// Listing is a filtered set of profiles.
type Listing struct {
	Items  []profile.Profile `json:"items"`
	Count  int               `json:"count"`
	Total  int               `json:"total"`
	Skills []string          `json:"skills"`
}

// PlanSummary aggregates a learning plan.
type PlanSummary struct {
	Goals           int `json:"goals"`
	AverageProgress int `json:"average_progress"`
	HighPriority    int `json:"high_priority"`
	Completed       int `json:"completed"`
}

// View is one profile with the figures derived from it.
type View struct {
	Profile profile.Profile `json:"profile"`
	// Rating is the mean review rating rounded to one decimal, 0 without reviews.
	Rating float64      `json:"rating"`
	Plan   *PlanSummary `json:"plan,omitempty"`
}

// Service reads profiles.
type Service struct {
	profiles ProfileRepository
}

// New creates a profile service.
func New(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

// List filters profiles. Skills lists every skill across all profiles, sorted.
func (s *Service) List(ctx context.Context, c filter.Criteria) (Listing, error) {
	if unknown := ProfileEngine.Unknown(c); len(unknown) > 0 {
		return Listing{}, fmt.Errorf("%w: unknown filter %s", domain.ErrInvalidCriteria, strings.Join(unknown, ", "))
	}
	all, err := s.profiles.All(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("list profiles: %w", err)
	}

	started := time.Now()
	items := ProfileEngine.Apply(all, c)
	metrics.ObserveFilter("profiles", started, len(items))

	return Listing{
		Items:  items,
		Count:  len(items),
		Total:  len(all),
		Skills: ProfileEngine.Facets(all, profile.FieldSkills).Sorted(),
	}, nil
}

// Get returns a profile by id. Only student profiles carry a plan summary.
func (s *Service) Get(ctx context.Context, id int) (View, error) {
	p, err := s.profiles.Find(ctx, func(p profile.Profile) bool { return p.ID == id })
	if err != nil {
		return View{}, fmt.Errorf("get profile %d: %w", id, err)
	}

	v := View{Profile: p, Rating: rating(p.Reviews)}
	if p.Role == profile.Student {
		v.Plan = summarize(p.LearningPlan)
	}
	return v, nil
}

func rating(reviews []profile.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(sum/float64(len(reviews))*10) / 10
}

func summarize(plan []profile.Goal) *PlanSummary {
	sum := &PlanSummary{Goals: len(plan)}
	if len(plan) == 0 {
		return sum
	}
	total := 0
	for _, g := range plan {
		total += g.Progress
		if g.Priority == "high" {
			sum.HighPriority++
		}
		if g.Progress >= 100 {
			sum.Completed++
		}
	}
	sum.AverageProgress = int(math.Round(float64(total) / float64(len(plan))))
	return sum
}
