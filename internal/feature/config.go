package feature

import "github.com/hamida-paiman/fraudscore/internal/domain"

// ageBound maps ages strictly below Max to a bucket label.
type ageBound struct {
	Max    int
	Bucket domain.AgeBucket
}

// SchemaConfig is the single source of truth for every threshold and bucket
// boundary in the feature schema. The default values are the ones the
// shipped model artifact was trained against; changing any of them is a
// breaking schema change.
type SchemaConfig struct {
	// NewAccountMaxAgeDays marks accounts younger than this as new.
	NewAccountMaxAgeDays int

	// AgeBounds are checked in order; the first bound with age < Max wins.
	AgeBounds []ageBound
	// AgeDefault is used when no bound matches.
	AgeDefault domain.AgeBucket

	// TopLocations is the closed set of location names kept as-is;
	// everything else collapses to domain.LocationOther.
	TopLocations []string
}

// DefaultSchemaConfig returns the canonical schema configuration.
func DefaultSchemaConfig() SchemaConfig {
	return SchemaConfig{
		NewAccountMaxAgeDays: 30,
		AgeBounds: []ageBound{
			{Max: 20, Bucket: domain.AgeUnder20},
			{Max: 30, Bucket: domain.Age20to29},
			{Max: 45, Bucket: domain.Age30to44},
			{Max: 60, Bucket: domain.Age45to59},
		},
		AgeDefault: domain.Age60Plus,
		TopLocations: []string{
			"New York",
			"Los Angeles",
			"Chicago",
			"New Jersey",
		},
	}
}
