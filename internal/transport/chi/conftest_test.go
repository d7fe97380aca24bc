package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/db/embedded"
	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/repository/application"
	"github.com/kailas-cloud/mentorhub/internal/repository/record"
	"github.com/kailas-cloud/mentorhub/internal/seed"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/mentorhub/internal/usecase/health"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

// newTestRouter wires the full stack over an in-memory store holding the shipped seed.
func newTestRouter(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()

	store, err := embedded.NewInMemory()
	if err != nil {
		t.Fatalf("embedded.NewInMemory: %v", err)
	}
	t.Cleanup(store.Close)

	mentors := record.New[mentor.Mentor](store, domain.MentorsKey)
	projects := record.New[project.Project](store, domain.ProjectsKey)
	requests := record.New[mentorship.Request](store, domain.RequestsKey)
	students := record.New[student.Student](store, domain.StudentsKey)
	workspaces := record.New[workspace.Workspace](store, domain.WorkspacesKey)
	profiles := record.New[profile.Profile](store, domain.ProfilesKey)

	data, err := seed.LoadFile("../../../config/seed.yaml")
	if err != nil {
		t.Fatalf("seed.LoadFile: %v", err)
	}
	err = seed.Write(context.Background(), data, seed.Targets{
		Mentors:  mentors,
		Projects: projects,
		Requests: requests,
		Students: students,

		Workspaces: workspaces,
		Profiles:   profiles,
	})
	if err != nil {
		t.Fatalf("seed.Write: %v", err)
	}

	server := NewServer(
		directoryuc.New(mentors, projects, application.New(store)),
		mentorshipuc.New(requests, mentors),
		dashboarduc.New(students),
		workspaceuc.New(workspaces, projects),
		profileuc.New(profiles),
		healthuc.New(store, map[string]healthuc.CatalogChecker{
			"mentors":  mentors,
			"projects": projects,
		}),
		zap.NewNop(),
	)
	return server.Router(cfg)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, code ErrorCode) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, status, rr.Body.String())
	}
	resp := decode[ErrorResponse](t, rr)
	if resp.Code != code {
		t.Errorf("code = %s, want %s", resp.Code, code)
	}
}

func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, http.NoBody)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
