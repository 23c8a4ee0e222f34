// Package input parses the raw attribute strings collected by a shell
// (terminal prompts or form fields) into a domain.RawTransaction. All user
// input validation lives here, before the pipeline is invoked; the core
// itself validates nothing except record completeness.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hamida-paiman/fraudscore/internal/domain"
)

// Fields carries the untrusted attribute strings from a shell, keyed by
// the same names both shells prompt for.
type Fields struct {
	Amount           string
	Quantity         string
	CustomerAge      string
	AccountAgeDays   string
	TransactionDate  string
	TransactionHour  string
	PaymentMethod    string
	ProductCategory  string
	DeviceUsed       string
	CustomerLocation string
}

// Parse validates and converts the fields. The transaction date is NOT
// validated: a bad date is absorbed later by the deriver's Monday
// fallback, never rejected here.
func Parse(f Fields) (domain.RawTransaction, error) {
	var raw domain.RawTransaction

	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil {
		return raw, fmt.Errorf("amount: %w", err)
	}
	if amount <= 0 {
		return raw, fmt.Errorf("amount must be positive, got %v", amount)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		return raw, fmt.Errorf("quantity: %w", err)
	}
	if quantity <= 0 {
		return raw, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	customerAge, err := strconv.Atoi(strings.TrimSpace(f.CustomerAge))
	if err != nil {
		return raw, fmt.Errorf("customer age: %w", err)
	}
	if customerAge < 0 {
		return raw, fmt.Errorf("customer age must not be negative, got %d", customerAge)
	}

	accountAge, err := strconv.Atoi(strings.TrimSpace(f.AccountAgeDays))
	if err != nil {
		return raw, fmt.Errorf("account age days: %w", err)
	}
	if accountAge < 0 {
		return raw, fmt.Errorf("account age days must not be negative, got %d", accountAge)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(f.TransactionHour))
	if err != nil {
		return raw, fmt.Errorf("transaction hour: %w", err)
	}
	if hour < 0 || hour > 23 {
		return raw, fmt.Errorf("transaction hour must be between 0 and 23, got %d", hour)
	}

	raw = domain.RawTransaction{
		Amount:           amount,
		Quantity:         quantity,
		CustomerAge:      customerAge,
		AccountAgeDays:   accountAge,
		TransactionDate:  strings.TrimSpace(f.TransactionDate),
		TransactionHour:  hour,
		PaymentMethod:    strings.TrimSpace(f.PaymentMethod),
		ProductCategory:  strings.TrimSpace(f.ProductCategory),
		DeviceUsed:       strings.TrimSpace(f.DeviceUsed),
		CustomerLocation: strings.TrimSpace(f.CustomerLocation),
	}
	return raw, nil
}

// Validate checks an already-typed RawTransaction (e.g. decoded from
// JSON), applying the same bounds as Parse.
func Validate(raw domain.RawTransaction) error {
	if raw.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", raw.Amount)
	}
	if raw.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", raw.Quantity)
	}
	if raw.CustomerAge < 0 {
		return fmt.Errorf("customer age must not be negative, got %d", raw.CustomerAge)
	}
	if raw.AccountAgeDays < 0 {
		return fmt.Errorf("account age days must not be negative, got %d", raw.AccountAgeDays)
	}
	if raw.TransactionHour < 0 || raw.TransactionHour > 23 {
		return fmt.Errorf("transaction hour must be between 0 and 23, got %d", raw.TransactionHour)
	}
	return nil
}
