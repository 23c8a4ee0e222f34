package feature

import (
	"math"
	"strings"
	"time"

	"github.com/hamida-paiman/fraudscore/internal/domain"
)

const dateLayout = "2006-01-02"

// Derive computes the engineered features for a raw transaction. It is a
// total function: an unparseable transaction date falls back to Monday
// instead of failing, because that is the behavior the model artifact was
// trained against. All other validation is the caller's job.
func Derive(raw domain.RawTransaction, cfg SchemaConfig) domain.DerivedFeatures {
	dow := DayOfWeek(raw.TransactionDate)

	return domain.DerivedFeatures{
		DayOfWeek:      dow,
		IsWeekend:      dow >= 5,
		PartOfDay:      HourPartOfDay(raw.TransactionHour),
		LogAmount:      math.Log1p(raw.Amount),
		IsNewAccount:   raw.AccountAgeDays < cfg.NewAccountMaxAgeDays,
		AgeBucket:      cfg.AgeBucket(raw.CustomerAge),
		LocationBucket: cfg.LocationBucket(raw.CustomerLocation),
	}
}

// DayOfWeek parses a YYYY-MM-DD date and returns 0=Monday .. 6=Sunday.
// A date that fails to parse yields Monday (0), by contract.
func DayOfWeek(dateStr string) int {
	t, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return 0
	}
	// time.Weekday counts from Sunday=0; the model counts from Monday=0.
	return (int(t.Weekday()) + 6) % 7
}

// HourPartOfDay buckets an hour of day into the four named parts. The
// intervals are half-open and cover all 24 hours: [0,6) Night, [6,12)
// Morning, [12,18) Afternoon, [18,24) Evening.
func HourPartOfDay(hour int) domain.PartOfDay {
	switch {
	case hour < 6:
		return domain.PartNight
	case hour < 12:
		return domain.PartMorning
	case hour < 18:
		return domain.PartAfternoon
	default:
		return domain.PartEvening
	}
}

// AgeBucket maps a customer age onto the configured bucket scheme.
func (c SchemaConfig) AgeBucket(age int) domain.AgeBucket {
	for _, b := range c.AgeBounds {
		if age < b.Max {
			return b.Bucket
		}
	}
	return c.AgeDefault
}

// LocationBucket collapses a free-form location into the configured
// allow-list, else "Other". Matching is exact after trimming whitespace.
func (c SchemaConfig) LocationBucket(location string) string {
	loc := strings.TrimSpace(location)
	for _, top := range c.TopLocations {
		if loc == top {
			return top
		}
	}
	return domain.LocationOther
}
