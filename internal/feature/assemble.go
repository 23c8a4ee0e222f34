package feature

import (
	"github.com/hamida-paiman/fraudscore/internal/domain"
)

// Assemble merges the raw attributes and derived features into the
// fixed-shape record the classifier expects. The post-merge completeness
// check guards against deriver or schema drift bugs; a missing column is
// returned as a *domain.SchemaError and must fail the request.
func Assemble(raw domain.RawTransaction, derived domain.DerivedFeatures) (domain.FeatureRecord, error) {
	rec := domain.FeatureRecord{
		domain.ColAmount:        raw.Amount,
		domain.ColLogAmount:     derived.LogAmount,
		domain.ColQuantity:      raw.Quantity,
		domain.ColCustomerAge:   raw.CustomerAge,
		domain.ColAccountAge:    raw.AccountAgeDays,
		domain.ColIsNewAccount:  boolToFlag(derived.IsNewAccount),
		domain.ColHour:          raw.TransactionHour,
		domain.ColDayOfWeek:     derived.DayOfWeek,
		domain.ColIsWeekend:     boolToFlag(derived.IsWeekend),
		domain.ColPaymentMethod: raw.PaymentMethod,
		domain.ColCategory:      raw.ProductCategory,
		domain.ColDevice:        raw.DeviceUsed,
		domain.ColLocationShort: derived.LocationBucket,
		domain.ColAgeBucket:     string(derived.AgeBucket),
		domain.ColPartOfDay:     string(derived.PartOfDay),
	}

	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// validateRecord verifies that every required column is present and non-nil.
func validateRecord(rec domain.FeatureRecord) error {
	for _, col := range domain.RequiredColumns {
		if v, ok := rec[col]; !ok || v == nil {
			return &domain.SchemaError{Column: col}
		}
	}
	return nil
}

// boolToFlag encodes a boolean the way the training data did: int 0/1.
func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
