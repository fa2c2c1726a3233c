package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
	"github.com/jdramirezl/finance-app-sub001/pkg/money"
)

var (
	openedAt   = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	maturityAt = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func TestNewCertificate_Valid(t *testing.T) {
	accountID := uuid.New()
	cert, err := model.NewCertificate(
		accountID, "CDT Bancolombia",
		decimal.NewFromInt(10000), decimal.RequireFromString("4.5"),
		valueobject.CompoundingMonthly,
		openedAt, maturityAt,
		decimal.NewFromInt(50), decimal.NewFromInt(4),
		money.COP,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, cert.ID())
	assert.Equal(t, accountID, cert.AccountID())
	assert.Equal(t, "CDT Bancolombia", cert.Name())
	assert.True(t, cert.HasPenalty())
	assert.Equal(t, "10000.00 COP", cert.PrincipalMoney().String())
}

func TestNewCertificate_ZeroOpenedAtAllowed(t *testing.T) {
	// Legacy records without an opening date are valid; valuation treats
	// them as freshly opened.
	_, err := model.NewCertificate(
		uuid.New(), "legacy",
		decimal.NewFromInt(5000), decimal.NewFromInt(3),
		valueobject.CompoundingDaily,
		time.Time{}, maturityAt,
		decimal.Zero, decimal.Zero,
		money.COP,
	)
	assert.NoError(t, err)
}

func TestNewCertificate_Invalid(t *testing.T) {
	valid := func() (uuid.UUID, decimal.Decimal, decimal.Decimal, time.Time, time.Time, decimal.Decimal, decimal.Decimal) {
		return uuid.New(), decimal.NewFromInt(10000), decimal.RequireFromString("4.5"), openedAt, maturityAt, decimal.Zero, decimal.Zero
	}

	t.Run("missing account", func(t *testing.T) {
		_, principal, rate, op, mat, pen, tax := valid()
		_, err := model.NewCertificate(uuid.Nil, "x", principal, rate, valueobject.CompoundingMonthly, op, mat, pen, tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("non-positive principal", func(t *testing.T) {
		account, _, rate, op, mat, pen, tax := valid()
		_, err := model.NewCertificate(account, "x", decimal.Zero, rate, valueobject.CompoundingMonthly, op, mat, pen, tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("non-positive rate", func(t *testing.T) {
		account, principal, _, op, mat, pen, tax := valid()
		_, err := model.NewCertificate(account, "x", principal, decimal.NewFromInt(-1), valueobject.CompoundingMonthly, op, mat, pen, tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("missing maturity", func(t *testing.T) {
		account, principal, rate, op, _, pen, tax := valid()
		_, err := model.NewCertificate(account, "x", principal, rate, valueobject.CompoundingMonthly, op, time.Time{}, pen, tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("maturity not after opening", func(t *testing.T) {
		account, principal, rate, op, _, pen, tax := valid()
		_, err := model.NewCertificate(account, "x", principal, rate, valueobject.CompoundingMonthly, op, op, pen, tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("negative penalty", func(t *testing.T) {
		account, principal, rate, op, mat, _, tax := valid()
		_, err := model.NewCertificate(account, "x", principal, rate, valueobject.CompoundingMonthly, op, mat, decimal.NewFromInt(-5), tax, money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
	t.Run("negative tax rate", func(t *testing.T) {
		account, principal, rate, op, mat, pen, _ := valid()
		_, err := model.NewCertificate(account, "x", principal, rate, valueobject.CompoundingMonthly, op, mat, pen, decimal.NewFromInt(-4), money.COP)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestReconstructCertificate_SkipsValidation(t *testing.T) {
	// Persistence reconstruction must round-trip whatever was stored, even
	// records the current rules would reject; the valuation engine guards.
	id := uuid.New()
	cert := model.ReconstructCertificate(
		id, uuid.New(), "stale",
		decimal.Zero, decimal.Zero,
		valueobject.CompoundingFrequency("WEEKLY"),
		openedAt, time.Time{},
		decimal.Zero, decimal.Zero,
		money.COP,
	)
	assert.Equal(t, id, cert.ID())
	assert.False(t, cert.HasPenalty())
}
