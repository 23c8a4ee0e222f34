// Package scoring composes the full evaluation pipeline: derive features,
// assemble the record, score it, and explain the verdict.
package scoring

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamida-paiman/fraudscore/internal/decision"
	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/feature"
	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/telemetry"
)

// Service is the single entry point shells call. Stateless between
// evaluations and safe for concurrent use as long as the classifier is.
type Service struct {
	classifier model.Classifier
	cfg        feature.SchemaConfig
	logger     *zap.Logger
}

// NewService creates a scoring service around an injected classifier.
// A nil logger falls back to a no-op logger.
func NewService(classifier model.Classifier, cfg feature.SchemaConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		classifier: classifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// Evaluate scores one raw transaction. The verdict is always derived from
// the probability via the fixed threshold; the classifier's own label is
// discarded. Classifier errors and schema errors are returned unchanged,
// with no retry.
func (s *Service) Evaluate(raw domain.RawTransaction) (*domain.PredictionResult, error) {
	derived := feature.Derive(raw, s.cfg)

	rec, err := feature.Assemble(raw, derived)
	if err != nil {
		telemetry.EvaluationErrors.Inc()
		return nil, fmt.Errorf("assemble record: %w", err)
	}

	probability, _, err := s.classifier.Score(rec)
	if err != nil {
		telemetry.EvaluationErrors.Inc()
		return nil, fmt.Errorf("score record: %w", err)
	}

	result := decision.Explain(rec, probability)
	result.ID = uuid.NewString()
	result.EvaluatedAt = time.Now()

	verdict := "not_fraudulent"
	if result.Label {
		verdict = "fraudulent"
	}
	telemetry.Evaluations.WithLabelValues(verdict).Inc()
	telemetry.Probabilities.Observe(probability)

	s.logger.Info("transaction scored",
		zap.String("id", result.ID),
		zap.Float64("probability", probability),
		zap.Bool("fraudulent", result.Label),
		zap.Strings("reasons", result.Reasons),
	)

	return &result, nil
}
