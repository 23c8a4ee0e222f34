package domain

// RawTransaction holds the attributes of a single retail transaction as
// supplied by a shell, before any feature engineering.
type RawTransaction struct {
	Amount           float64 `json:"amount"`
	Quantity         int     `json:"quantity"`
	CustomerAge      int     `json:"customer_age"`
	AccountAgeDays   int     `json:"account_age_days"`
	TransactionDate  string  `json:"transaction_date"` // YYYY-MM-DD
	TransactionHour  int     `json:"transaction_hour"` // 0-23
	PaymentMethod    string  `json:"payment_method"`
	ProductCategory  string  `json:"product_category"`
	DeviceUsed       string  `json:"device_used"`
	CustomerLocation string  `json:"customer_location"`
}
