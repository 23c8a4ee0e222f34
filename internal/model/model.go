// Package model defines the classifier collaborator the scoring core
// depends on, plus the logistic-regression implementation loaded from the
// local model artifact.
package model

import "github.com/hamida-paiman/fraudscore/internal/domain"

// Classifier scores one assembled feature record. Implementations must be
// safe for concurrent read-only use; the core calls Score synchronously,
// performs no retries, and propagates any error unchanged.
//
// The returned label is the classifier's own thresholding and is advisory:
// the decision engine recomputes the final verdict from the probability.
type Classifier interface {
	Score(rec domain.FeatureRecord) (probability float64, label bool, err error)
}

// Info describes the loaded model artifact for display by the shells.
type Info struct {
	Name         string  `json:"name"`
	TestAccuracy float64 `json:"test_accuracy"`
}
