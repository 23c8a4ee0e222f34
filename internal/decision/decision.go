// Package decision applies the threshold policy that turns a model
// probability into a verdict and generates the rule-based explanation
// shown to the user.
package decision

import (
	"fmt"
	"strings"

	"github.com/hamida-paiman/fraudscore/internal/domain"
)

// FraudThreshold converts a probability into the binary verdict. The
// verdict is always recomputed here from the probability; the classifier's
// own label output is ignored so the displayed probability and verdict can
// never disagree.
const FraudThreshold = 0.5

// rule is one independently evaluated risk factor. All matching rules
// fire; output order is the order of this table, not strength.
type rule struct {
	reason string
	match  func(rec domain.FeatureRecord) bool
}

var rules = []rule{
	{
		reason: "high transaction amount",
		match: func(rec domain.FeatureRecord) bool {
			return rec.Float(domain.ColAmount) > 1000
		},
	},
	{
		reason: "very new account",
		match: func(rec domain.FeatureRecord) bool {
			return rec.Float(domain.ColIsNewAccount) == 1
		},
	},
	{
		reason: "night-time transaction",
		match: func(rec domain.FeatureRecord) bool {
			return rec.String(domain.ColPartOfDay) == string(domain.PartNight)
		},
	},
	{
		reason: "weekend transaction",
		match: func(rec domain.FeatureRecord) bool {
			return rec.Float(domain.ColIsWeekend) == 1
		},
	},
	{
		reason: "transaction made on mobile",
		match: func(rec domain.FeatureRecord) bool {
			return strings.EqualFold(rec.String(domain.ColDevice), "mobile")
		},
	},
}

// Decide applies the threshold policy.
func Decide(probability float64) bool {
	return probability >= FraudThreshold
}

// Explain builds the prediction result for a scored record: the thresholded
// verdict, the matching reason tags in table order, and the composed
// message. The caller stamps ID and EvaluatedAt.
func Explain(rec domain.FeatureRecord, probability float64) domain.PredictionResult {
	label := Decide(probability)

	var reasons []string
	for _, r := range rules {
		if r.match(rec) {
			reasons = append(reasons, r.reason)
		}
	}

	return domain.PredictionResult{
		Probability: probability,
		Label:       label,
		Reasons:     reasons,
		Message:     composeMessage(probability, label, reasons),
	}
}

func composeMessage(probability float64, label bool, reasons []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimated fraud probability: %.2f%%. ", probability*100)

	if label {
		b.WriteString("This transaction is LIKELY FRAUDULENT.")
	} else {
		b.WriteString("This transaction is likely NOT fraudulent.")
	}

	if len(reasons) > 0 {
		b.WriteString(" Key factors: ")
		b.WriteString(strings.Join(reasons, ", "))
		b.WriteString(".")
	} else {
		b.WriteString(" No strong risk factors were detected.")
	}

	return b.String()
}
