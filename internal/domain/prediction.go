package domain

import "time"

// PredictionResult is the outcome of scoring one transaction: the model
// probability, the thresholded verdict, and the human-readable rationale.
// Built once per request and discarded after rendering.
type PredictionResult struct {
	ID          string    `json:"id"`
	Probability float64   `json:"probability"` // [0, 1]
	Label       bool      `json:"fraudulent"`
	Reasons     []string  `json:"reasons"`
	Message     string    `json:"message"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
