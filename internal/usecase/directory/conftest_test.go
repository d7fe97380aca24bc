package directory

import (
	"context"
	"errors"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
)

// fakeRepo implements the read contracts over a fixed slice.
type fakeRepo[R any] struct {
	records []R
	err     error
}

func (f *fakeRepo[R]) All(_ context.Context) ([]R, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]R(nil), f.records...), nil
}

func (f *fakeRepo[R]) Find(_ context.Context, fn func(R) bool) (R, error) {
	var zero R
	if f.err != nil {
		return zero, f.err
	}
	for _, r := range f.records {
		if fn(r) {
			return r, nil
		}
	}
	return zero, domain.ErrNotFound
}

type fakeApps struct {
	saved   []project.Application
	saveErr error
}

func (f *fakeApps) Save(_ context.Context, app project.Application) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, app)
	return nil
}

func (f *fakeApps) List(_ context.Context, projectID int) ([]project.Application, error) {
	var out []project.Application
	for _, a := range f.saved {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApps) Withdraw(_ context.Context, projectID int, email string) error {
	kept := f.saved[:0]
	for _, a := range f.saved {
		if a.ProjectID != projectID || a.StudentEmail != email {
			kept = append(kept, a)
		}
	}
	f.saved = kept
	return nil
}

var errStore = errors.New("store unavailable")

func testMentors() []mentor.Mentor {
	return []mentor.Mentor{
		{ID: 1, Name: "Sarah Johnson", Skills: []string{"React", "Node.js", "AWS", "JavaScript", "Python"},
			Rating: 4.9, Experience: "8 years", Availability: mentor.AvailableNow},
		{ID: 2, Name: "Michael Chen", Skills: []string{"Python", "Machine Learning", "TensorFlow", "Data Science", "SQL"},
			Rating: 4.8, Experience: "6 years", Availability: mentor.AvailableNow},
		{ID: 3, Name: "Emma Rodriguez", Skills: []string{"UI/UX Design", "Figma", "Adobe XD", "Prototyping", "User Research"},
			Rating: 4.7, Experience: "5 years", Availability: mentor.AvailableNow},
		{ID: 4, Name: "David Kim", Skills: []string{"DevOps", "Docker", "Kubernetes", "Jenkins", "AWS"},
			Rating: 4.6, Experience: "7 years", Availability: mentor.Busy},
		{ID: 5, Name: "Lisa Wang", Skills: []string{"React Native", "Flutter", "Mobile Development", "Firebase", "TypeScript"},
			Rating: 4.9, Experience: "4 years", Availability: mentor.AvailableNow},
	}
}

func testProjects() []project.Project {
	return []project.Project{
		{ID: 1, Title: "E-commerce Website", Description: "Build a full-stack store",
			Skills: []string{"React", "Node.js"}, Duration: "1-2 months", Difficulty: "Medium"},
		{ID: 2, Title: "Weather App", Description: "Fetch forecasts from a public API",
			Skills: []string{"JavaScript", "API"}, Duration: "1-2 weeks", Difficulty: "Easy"},
		{ID: 3, Title: "ML Pipeline", Description: "Train and serve a model",
			Skills: []string{"Python", "React"}, Duration: "3+ months", Difficulty: "Hard"},
	}
}

func newTestService() (*Service, *fakeApps) {
	apps := &fakeApps{}
	svc := New(
		&fakeRepo[mentor.Mentor]{records: testMentors()},
		&fakeRepo[project.Project]{records: testProjects()},
		apps,
	)
	return svc, apps
}
