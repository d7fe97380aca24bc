package chi

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/mentorhub/internal/usecase/health"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

// Server serves the mentorhub HTTP API.
type Server struct {
	directory     *directoryuc.Service
	mentorship    *mentorshipuc.Service
	dashboard     *dashboarduc.Service
	workspace     *workspaceuc.Service
	profiles      *profileuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	directory *directoryuc.Service,
	mentorship *mentorshipuc.Service,
	dashboard *dashboarduc.Service,
	workspace *workspaceuc.Service,
	profiles *profileuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		directory:     directory,
		mentorship:    mentorship,
		dashboard:     dashboard,
		workspace:     workspace,
		profiles:      profiles,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	APIKeys        []string
	AllowedOrigins []string
	CORSMaxAgeSec  int
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(Recoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         cfg.CORSMaxAgeSec,
	}))
	r.Use(BearerAuthMiddleware(cfg.APIKeys))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/mentors", func(r chi.Router) {
		r.Get("/", s.ListMentors)
		r.Get("/{id}", s.GetMentor)
		r.Post("/{id}/requests", s.CreateRequest)
	})
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.ListProjects)
		r.Get("/{id}", s.GetProject)
		r.Get("/{id}/applications", s.ListApplications)
		r.Post("/{id}/applications", s.ApplyToProject)
		r.Delete("/{id}/applications/{email}", s.WithdrawApplication)
		r.Get("/{id}/tasks", s.ListTasks)
		r.Post("/{id}/tasks", s.CreateTask)
		r.Get("/{id}/team", s.ListTeam)
	})
	r.Route("/requests", func(r chi.Router) {
		r.Get("/", s.ListRequests)
		r.Post("/{id}/decision", s.DecideRequest)
	})
	r.Get("/students/{id}/dashboard", s.GetDashboard)
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", s.ListProfiles)
		r.Get("/{id}", s.GetProfile)
	})

	return r
}

// ListMentors handles GET /mentors.
func (s *Server) ListMentors(w http.ResponseWriter, r *http.Request) {
	c, err := bindCriteria(r.URL.Query(), mentorParams)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	listing, err := s.directory.ListMentors(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// GetMentor handles GET /mentors/{id}.
func (s *Server) GetMentor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	m, err := s.directory.GetMentor(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// CreateRequest handles POST /mentors/{id}/requests.
func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	var draft mentorship.Draft
	if !decodeBody(w, r, &draft) {
		return
	}

	req, err := s.mentorship.Create(r.Context(), id, draft)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	c, err := bindCriteria(r.URL.Query(), projectParams)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	listing, err := s.directory.ListProjects(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// GetProject handles GET /projects/{id}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	p, err := s.directory.GetProject(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ApplyToProject handles POST /projects/{id}/applications.
func (s *Server) ApplyToProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	var app project.Application
	if !decodeBody(w, r, &app) {
		return
	}

	saved, err := s.directory.ApplyToProject(r.Context(), id, app)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// ListApplications handles GET /projects/{id}/applications.
func (s *Server) ListApplications(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	apps, err := s.directory.Applications(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": apps})
}

// WithdrawApplication handles DELETE /projects/{id}/applications/{email}.
func (s *Server) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	// chi matches on RawPath, so an encoded "@" arrives as %40.
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid email: "+err.Error())
		return
	}

	if err := s.directory.WithdrawApplication(r.Context(), id, email); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRequests handles GET /requests.
func (s *Server) ListRequests(w http.ResponseWriter, r *http.Request) {
	q, err := bindRequestQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	listing, err := s.mentorship.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// DecisionRequest is the body of POST /requests/{id}/decision.
type DecisionRequest struct {
	Action mentorship.Status `json:"action"`
}

// DecideRequest handles POST /requests/{id}/decision.
func (s *Server) DecideRequest(w http.ResponseWriter, r *http.Request) {
	var body DecisionRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := s.mentorship.Decide(r.Context(), chi.URLParam(r, "id"), body.Action)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// GetDashboard handles GET /students/{id}/dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	c, err := bindCriteria(r.URL.Query(), dashboardParams)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	view, err := s.dashboard.Get(r.Context(), id, c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ListTasks handles GET /projects/{id}/tasks.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	c, err := bindCriteria(r.URL.Query(), taskParams)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	board, err := s.workspace.Tasks(r.Context(), id, c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// CreateTask handles POST /projects/{id}/tasks.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	var draft workspace.TaskDraft
	if !decodeBody(w, r, &draft) {
		return
	}

	task, err := s.workspace.CreateTask(r.Context(), id, draft)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// ListTeam handles GET /projects/{id}/team.
func (s *Server) ListTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	team, err := s.workspace.Team(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": team})
}

// ListProfiles handles GET /profiles.
func (s *Server) ListProfiles(w http.ResponseWriter, r *http.Request) {
	c, err := bindCriteria(r.URL.Query(), profileParams)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	listing, err := s.profiles.List(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// GetProfile handles GET /profiles/{id}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	view, err := s.profiles.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
