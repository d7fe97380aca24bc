package mentorship

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/logger"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
	"github.com/kailas-cloud/mentorhub/internal/validate"
)

// Criteria keys accepted when listing requests.
const (
	ByStatus = "status"
	ByMentor = "mentor"
	BySkill  = "skill"
	BySearch = "search"
)

// RequestEngine filters mentorship requests.
var RequestEngine = search.MustEngine(mentorship.Schema,
	filter.Search(BySearch, mentorship.FieldStudent, mentorship.FieldMessage),
	filter.Member(BySkill, mentorship.FieldSkills),
	filter.Equal(ByMentor, mentorship.FieldMentorID),
	filter.Equal(ByStatus, mentorship.FieldStatus),
)

// Query selects requests. Zero values select everything.
type Query struct {
	Status   mentorship.Status
	MentorID int
	Skill    string
	Search   string
}

// Listing holds the requests in one status tab plus the size of every tab.
type Listing struct {
	Items  []mentorship.Request      `json:"items"`
	Counts map[mentorship.Status]int `json:"counts"`
}

// Service manages mentorship requests.
type Service struct {
	requests RequestRepository
	mentors  MentorReader
	now      func() time.Time
	newID    func() string
}

// New creates a mentorship service.
func New(requests RequestRepository, mentors MentorReader) *Service {
	return &Service{
		requests: requests,
		mentors:  mentors,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// List returns the requests matching q. Counts cover every status under the
// same mentor, skill and search scope, so tab labels stay stable while switching.
func (s *Service) List(ctx context.Context, q Query) (Listing, error) {
	if q.Status != "" {
		if _, err := mentorship.ParseStatus(string(q.Status)); err != nil {
			return Listing{}, err
		}
	}

	all, err := s.requests.All(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("list requests: %w", err)
	}

	scope := filter.Criteria{BySkill: q.Skill, BySearch: q.Search}
	if q.MentorID > 0 {
		scope = scope.With(ByMentor, strconv.Itoa(q.MentorID))
	}

	started := time.Now()
	scoped := RequestEngine.Apply(all, scope)
	items := RequestEngine.Apply(scoped, filter.Criteria{ByStatus: string(q.Status)})
	metrics.ObserveFilter("requests", started, len(items))

	counts := make(map[mentorship.Status]int, len(mentorship.Statuses))
	for _, st := range mentorship.Statuses {
		counts[st] = 0
	}
	for value, n := range RequestEngine.Facets(scoped, mentorship.FieldStatus).Counts() {
		counts[mentorship.Status(value)] = n
	}

	return Listing{Items: items, Counts: counts}, nil
}

// Create files a new pending request to a mentor.
func (s *Service) Create(ctx context.Context, mentorID int, draft mentorship.Draft) (mentorship.Request, error) {
	if _, err := s.mentors.Find(ctx, func(m mentor.Mentor) bool { return m.ID == mentorID }); err != nil {
		return mentorship.Request{}, fmt.Errorf("get mentor %d: %w", mentorID, err)
	}

	draft.StudentName = strings.TrimSpace(draft.StudentName)
	draft.StudentEmail = strings.TrimSpace(draft.StudentEmail)
	if err := validate.Struct(draft); err != nil {
		return mentorship.Request{}, err
	}

	req := mentorship.Request{
		ID:           s.newID(),
		MentorID:     mentorID,
		StudentName:  draft.StudentName,
		StudentEmail: draft.StudentEmail,
		Message:      draft.Message,
		Skills:       append([]string{}, draft.Skills...),
		Status:       mentorship.Pending,
		CreatedAt:    s.now().UTC(),
	}

	// newest first
	err := s.requests.Update(ctx, func(reqs []mentorship.Request) ([]mentorship.Request, error) {
		return append([]mentorship.Request{req}, reqs...), nil
	})
	if err != nil {
		return mentorship.Request{}, fmt.Errorf("save request: %w", err)
	}

	logger.FromContext(ctx).Info("mentorship request created",
		zap.String("request_id", req.ID), zap.Int("mentor_id", mentorID))
	return req, nil
}

// Decide accepts or rejects a pending request.
func (s *Service) Decide(ctx context.Context, id string, action mentorship.Status) (mentorship.Request, error) {
	var decided mentorship.Request
	err := s.requests.Update(ctx, func(reqs []mentorship.Request) ([]mentorship.Request, error) {
		for i := range reqs {
			if reqs[i].ID != id {
				continue
			}
			next, err := reqs[i].Status.Decide(action)
			if err != nil {
				return nil, err
			}
			reqs[i].Status = next
			decided = reqs[i]
			return reqs, nil
		}
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return mentorship.Request{}, err
	}

	logger.FromContext(ctx).Info("mentorship request decided",
		zap.String("request_id", id), zap.String("status", string(decided.Status)))
	return decided, nil
}
