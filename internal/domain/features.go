package domain

// PartOfDay is one of four named buckets partitioning the 24-hour clock.
type PartOfDay string

const (
	PartNight     PartOfDay = "Night"     // [0, 6)
	PartMorning   PartOfDay = "Morning"   // [6, 12)
	PartAfternoon PartOfDay = "Afternoon" // [12, 18)
	PartEvening   PartOfDay = "Evening"   // [18, 24)
)

// AgeBucket is the categorical encoding of customer age the model was
// trained against.
type AgeBucket string

const (
	AgeUnder20 AgeBucket = "<20"
	Age20to29  AgeBucket = "20-29"
	Age30to44  AgeBucket = "30-44"
	Age45to59  AgeBucket = "45-59"
	Age60Plus  AgeBucket = "60+"
)

// LocationOther is the catch-all bucket for locations outside the allow-list.
const LocationOther = "Other"

// DerivedFeatures are the engineered values computed from a RawTransaction.
type DerivedFeatures struct {
	DayOfWeek      int       `json:"day_of_week"` // 0=Monday .. 6=Sunday
	IsWeekend      bool      `json:"is_weekend"`
	PartOfDay      PartOfDay `json:"part_of_day"`
	LogAmount      float64   `json:"log_amount"` // ln(1+amount)
	IsNewAccount   bool      `json:"is_new_account"`
	AgeBucket      AgeBucket `json:"age_bucket"`
	LocationBucket string    `json:"location_bucket"`
}
