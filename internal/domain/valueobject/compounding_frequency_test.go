package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

func TestNewCompoundingFrequency(t *testing.T) {
	for _, s := range []string{"DAILY", "MONTHLY", "QUARTERLY", "ANNUALLY"} {
		f, err := valueobject.NewCompoundingFrequency(s)
		require.NoError(t, err)
		assert.Equal(t, s, f.String())
	}

	_, err := valueobject.NewCompoundingFrequency("WEEKLY")
	assert.Error(t, err)

	_, err = valueobject.NewCompoundingFrequency("")
	assert.Error(t, err)
}

func TestCompoundingFrequency_PeriodsPerYear(t *testing.T) {
	assert.Equal(t, 365, valueobject.CompoundingDaily.PeriodsPerYear())
	assert.Equal(t, 12, valueobject.CompoundingMonthly.PeriodsPerYear())
	assert.Equal(t, 4, valueobject.CompoundingQuarterly.PeriodsPerYear())
	assert.Equal(t, 1, valueobject.CompoundingAnnually.PeriodsPerYear())
}

func TestCompoundingFrequency_UnrecognizedFallsBackToMonthly(t *testing.T) {
	// Stale records can carry frequencies this version no longer knows.
	assert.Equal(t, 12, valueobject.CompoundingFrequency("WEEKLY").PeriodsPerYear())
	assert.Equal(t, 12, valueobject.CompoundingFrequency("").PeriodsPerYear())
}
