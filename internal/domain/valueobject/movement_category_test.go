package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

func TestNewMovementCategory(t *testing.T) {
	for _, s := range []string{"INGRESO_NORMAL", "INGRESO_FIJO", "EGRESO_NORMAL", "EGRESO_FIJO"} {
		c, err := valueobject.NewMovementCategory(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}

	_, err := valueobject.NewMovementCategory("TRANSFERENCIA")
	assert.Error(t, err)
}

func TestMovementCategory_Sign(t *testing.T) {
	assert.True(t, valueobject.CategoryIngresoNormal.IsIncome())
	assert.True(t, valueobject.CategoryIngresoFijo.IsIncome())
	assert.False(t, valueobject.CategoryIngresoNormal.IsExpense())

	assert.True(t, valueobject.CategoryEgresoNormal.IsExpense())
	assert.True(t, valueobject.CategoryEgresoFijo.IsExpense())
	assert.False(t, valueobject.CategoryEgresoFijo.IsIncome())
}

func TestNewPocketType(t *testing.T) {
	normal, err := valueobject.NewPocketType("NORMAL")
	require.NoError(t, err)
	assert.False(t, normal.IsFixed())

	fixed, err := valueobject.NewPocketType("FIXED")
	require.NoError(t, err)
	assert.True(t, fixed.IsFixed())

	_, err = valueobject.NewPocketType("SHARED")
	assert.Error(t, err)
}
