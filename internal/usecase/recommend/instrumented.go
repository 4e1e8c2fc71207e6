package recommend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/domain/query/request"
	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/metrics"
)

// InstrumentedService wraps Service with query metrics and debug logging.
// The engine itself stays metrics-free; this layer owns all observability.
type InstrumentedService struct {
	*Service
	logger *zap.Logger
}

// NewInstrumented wraps the engine and publishes the snapshot gauges once,
// since the snapshot never changes after construction.
func NewInstrumented(svc *Service, logger *zap.Logger) *InstrumentedService {
	metrics.CatalogRecords.Set(float64(svc.Stats().Records))
	metrics.VocabularyTerms.Set(float64(svc.Stats().VocabularyTerms))
	return &InstrumentedService{Service: svc, logger: logger}
}

// Recommend delegates to the engine and records per-mode counters and
// latency. The mode label is the served mode, so auto-routed queries count
// under the mode that actually answered them.
func (s *InstrumentedService) Recommend(
	ctx context.Context, req *request.Request,
) (result.Recommendation, error) {
	start := time.Now()

	rec, err := s.Service.Recommend(ctx, req)

	duration := time.Since(start)

	servedMode := string(rec.Mode())
	status := "ok"
	switch {
	case err != nil:
		servedMode = string(req.Mode())
		status = "error"
	case rec.IsEmpty():
		status = "empty"
	}

	metrics.EngineQueriesTotal.WithLabelValues(servedMode, status).Inc()
	metrics.EngineQueryDuration.WithLabelValues(servedMode).Observe(duration.Seconds())

	if err != nil {
		s.logger.Debug("Recommendation query failed",
			zap.String("mode", string(req.Mode())),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return result.Recommendation{}, err
	}

	s.logger.Debug("Recommendation query served",
		zap.String("mode", servedMode),
		zap.String("matched_title", rec.MatchedTitle()),
		zap.Int("results", len(rec.Results())),
		zap.Duration("duration", duration),
	)

	return rec, nil
}
