package utils

import (
	"encoding/json"
	"testing"

	"property-management-backend/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	iso, err := ParseFlexibleDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", iso.String())

	uk, err := ParseFlexibleDate("15/03/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", uk.String())

	padded, err := ParseFlexibleDate("  2024-03-15  ")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", padded.String())

	_, err = ParseFlexibleDate("03-15-2024")
	assert.Error(t, err)

	_, err = ParseFlexibleDate("not a date")
	assert.Error(t, err)
}

func TestDateOnlyJSON(t *testing.T) {
	d, err := ParseFlexibleDate("2024-01-31")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-31"`, string(out))

	var back DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"31/01/2024"`), &back))
	assert.Equal(t, "2024-01-31", back.String())
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan("2024-06-01"))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateOnlyBefore(t *testing.T) {
	early, _ := ParseFlexibleDate("2024-01-01")
	late, _ := ParseFlexibleDate("2024-01-02")

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))
}

func TestNormalizeDateFields(t *testing.T) {
	fields := map[string]interface{}{
		"due_date":   "01/12/2025",
		"issue_date": "2025-11-15",
		"amount_due": 900,
	}
	require.NoError(t, NormalizeDateFields(fields, "due_date", "issue_date"))

	assert.Equal(t, "2025-12-01", fields["due_date"])
	assert.Equal(t, "2025-11-15", fields["issue_date"])
	assert.Equal(t, 900, fields["amount_due"])

	// Absent and nil keys are left alone.
	require.NoError(t, NormalizeDateFields(map[string]interface{}{"due_date": nil}, "due_date"))

	err := NormalizeDateFields(map[string]interface{}{"due_date": "31/31/2025"}, "due_date")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = NormalizeDateFields(map[string]interface{}{"due_date": 20251201}, "due_date")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
