package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the database is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckEmpty indicates a reachable but unseeded collection.
	CheckEmpty CheckResult = "empty"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	db       DBPinger
	catalogs map[string]CatalogChecker
}

// New creates a Service. catalogs maps a check name to the collection it probes.
func New(db DBPinger, catalogs map[string]CatalogChecker) *Service {
	return &Service{db: db, catalogs: catalogs}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.catalogs)+1)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks["database"] = CheckOK

	status := Healthy
	for name, c := range s.catalogs {
		ok, err := c.Exists(ctx)
		switch {
		case err != nil:
			checks[name] = CheckError
		case !ok:
			checks[name] = CheckEmpty
		default:
			checks[name] = CheckOK
		}
		if checks[name] != CheckOK {
			status = Degraded
		}
	}

	return Report{Status: status, Checks: checks}
}
