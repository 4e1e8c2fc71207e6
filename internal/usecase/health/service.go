package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service reports engine readiness. The engine runs in-process, so there is
// nothing to ping; the checks verify the snapshot actually loaded something
// indexable.
type Service struct {
	engine EngineProbe
}

// New creates a Service.
func New(engine EngineProbe) *Service {
	return &Service{engine: engine}
}

// Check inspects the loaded snapshot: the catalog must hold records and the
// index must hold vocabulary terms (a non-empty catalog of all-stopword
// synopses still cannot answer similarity queries).
func (s *Service) Check() Report {
	checks := make(map[string]CheckResult)

	checks["catalog"] = CheckOK
	if s.engine.RecordCount() == 0 {
		checks["catalog"] = CheckError
	}

	checks["index"] = CheckOK
	if s.engine.VocabularyTerms() == 0 {
		checks["index"] = CheckError
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
