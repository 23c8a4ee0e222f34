package feature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamida-paiman/fraudscore/internal/domain"
)

func sampleRaw() domain.RawTransaction {
	return domain.RawTransaction{
		Amount:           1500,
		Quantity:         3,
		CustomerAge:      34,
		AccountAgeDays:   10,
		TransactionDate:  "2025-11-30",
		TransactionHour:  2,
		PaymentMethod:    "Credit Card",
		ProductCategory:  "Electronics",
		DeviceUsed:       "Mobile",
		CustomerLocation: "New York",
	}
}

func TestAssembleProducesFullRecord(t *testing.T) {
	cfg := DefaultSchemaConfig()
	raw := sampleRaw()

	rec, err := Assemble(raw, Derive(raw, cfg))
	require.NoError(t, err)

	require.Len(t, rec, len(domain.RequiredColumns))
	for _, col := range domain.RequiredColumns {
		assert.Contains(t, rec, col)
	}

	assert.Equal(t, 1500.0, rec.Float(domain.ColAmount))
	assert.Equal(t, 1.0, rec.Float(domain.ColIsNewAccount))
	assert.Equal(t, 1.0, rec.Float(domain.ColIsWeekend)) // Sunday
	assert.Equal(t, string(domain.PartNight), rec.String(domain.ColPartOfDay))
	assert.Equal(t, string(domain.Age30to44), rec.String(domain.ColAgeBucket))
	assert.Equal(t, "New York", rec.String(domain.ColLocationShort))
}

func TestValidateRecordMissingColumn(t *testing.T) {
	cfg := DefaultSchemaConfig()
	raw := sampleRaw()

	rec, err := Assemble(raw, Derive(raw, cfg))
	require.NoError(t, err)

	delete(rec, domain.ColAgeBucket)
	err = validateRecord(rec)
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, domain.ColAgeBucket, schemaErr.Column)
	assert.Contains(t, err.Error(), domain.ColAgeBucket)
}

func TestValidateRecordNilValue(t *testing.T) {
	cfg := DefaultSchemaConfig()
	raw := sampleRaw()

	rec, err := Assemble(raw, Derive(raw, cfg))
	require.NoError(t, err)

	rec[domain.ColDevice] = nil
	err = validateRecord(rec)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, domain.ColDevice, schemaErr.Column)
}
