package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency_Valid(t *testing.T) {
	for _, code := range []string{"COP", "USD", "EUR", "JPY"} {
		c, err := NewCurrency(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.Code())
		assert.Equal(t, code, c.String())
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"lowercase", "cop"},
		{"mixed case", "Cop"},
		{"too short", "CO"},
		{"too long", "COPP"},
		{"digits", "CO1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurrency(tt.code)
			assert.Error(t, err)
		})
	}
}

func TestMustCurrency_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCurrency("bad") })
}

func TestNewFromString(t *testing.T) {
	m, err := NewFromString("1500.50", "COP")
	require.NoError(t, err)
	assert.Equal(t, "1500.50 COP", m.String())

	_, err = NewFromString("not-a-number", "COP")
	assert.Error(t, err)

	_, err = NewFromString("100", "bad")
	assert.Error(t, err)
}

func TestMoney_AddSubtract(t *testing.T) {
	a := New(decimal.NewFromInt(100), COP)
	b := New(decimal.NewFromInt(40), COP)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(140)))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(60)))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	a := New(decimal.NewFromInt(100), COP)
	b := New(decimal.NewFromInt(40), USD)

	_, err := a.Add(b)
	assert.Error(t, err)

	_, err = a.Subtract(b)
	assert.Error(t, err)
}

func TestMoney_NegateAbs(t *testing.T) {
	m := New(decimal.NewFromInt(-50), COP)
	assert.True(t, m.IsNegative())
	assert.True(t, m.Negate().Amount().Equal(decimal.NewFromInt(50)))
	assert.True(t, m.Abs().Amount().Equal(decimal.NewFromInt(50)))
	assert.False(t, m.Abs().IsNegative())
}

func TestMoney_ZeroAndEqual(t *testing.T) {
	z := Zero(COP)
	assert.True(t, z.IsZero())
	assert.True(t, z.Equal(New(decimal.Zero, COP)))
	assert.False(t, z.Equal(Zero(USD)))
}
