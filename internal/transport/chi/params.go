package chi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

var (
	mentorParams = []string{
		directoryuc.MentorSearch,
		directoryuc.MentorSkill,
		directoryuc.MentorRating,
		directoryuc.MentorExperience,
		directoryuc.MentorAvailability,
	}
	projectParams = []string{
		directoryuc.ProjectSearch,
		directoryuc.ProjectSkill,
		directoryuc.ProjectDuration,
		directoryuc.ProjectDifficulty,
	}
	dashboardParams = []string{
		dashboarduc.ByStatus,
		dashboarduc.BySearch,
	}
	taskParams = []string{
		workspaceuc.ByStatus,
		workspaceuc.ByPriority,
		workspaceuc.ByAssignee,
		workspaceuc.BySearch,
	}
	profileParams = []string{
		profileuc.ByRole,
		profileuc.BySkill,
		profileuc.BySearch,
	}
)

// bindCriteria binds each named form parameter into criteria. Empty values
// are left unset. A repeated parameter is an error.
func bindCriteria(q url.Values, names []string) (filter.Criteria, error) {
	c := filter.Criteria{}
	for _, name := range names {
		var v string
		if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		if v != "" {
			c[name] = v
		}
	}
	return c, nil
}

func bindRequestQuery(q url.Values) (mentorshipuc.Query, error) {
	var (
		status, skill, search string
		mentorID              *int
	)
	binds := []struct {
		name string
		dest any
	}{
		{mentorshipuc.ByStatus, &status},
		{mentorshipuc.ByMentor, &mentorID},
		{mentorshipuc.BySkill, &skill},
		{mentorshipuc.BySearch, &search},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return mentorshipuc.Query{}, fmt.Errorf("parameter %s: %w", b.name, err)
		}
	}

	query := mentorshipuc.Query{
		Status: mentorship.Status(status),
		Skill:  skill,
		Search: search,
	}
	if mentorID != nil {
		query.MentorID = *mentorID
	}
	return query, nil
}

// pathID parses the integer {id} path parameter.
func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
