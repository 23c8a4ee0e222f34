package model

import (
	"fmt"
	"math"
	"time"

	"github.com/hamida-paiman/fraudscore/internal/domain"
)

// Logistic is a logistic-regression classifier over the feature record:
// numeric columns contribute coefficient*value, categorical columns
// contribute the weight of the observed level (unknown levels contribute
// nothing, matching how the training pipeline handled unseen categories).
// Read-only after load, safe for concurrent Score calls.
type Logistic struct {
	Name         string
	Intercept    float64
	TestAccuracy float64
	TrainedAt    time.Time

	// Numeric maps column name to coefficient.
	Numeric map[string]float64
	// Categorical maps column name to per-level weights.
	Categorical map[string]map[string]float64
}

// Score computes sigmoid(intercept + sum of contributions). A numeric
// coefficient pointing at a non-numeric column indicates a corrupt
// artifact and is returned as an error rather than silently scored as 0.
func (m *Logistic) Score(rec domain.FeatureRecord) (float64, bool, error) {
	z := m.Intercept

	for col, coef := range m.Numeric {
		switch v := rec[col].(type) {
		case float64:
			z += coef * v
		case int:
			z += coef * float64(v)
		default:
			return 0, false, fmt.Errorf("model: numeric column %q holds %T", col, rec[col])
		}
	}

	for col, levels := range m.Categorical {
		if w, ok := levels[rec.String(col)]; ok {
			z += w
		}
	}

	p := 1 / (1 + math.Exp(-z))
	return p, p >= 0.5, nil
}

// Info returns the display metadata for this artifact.
func (m *Logistic) Info() Info {
	return Info{Name: m.Name, TestAccuracy: m.TestAccuracy}
}
