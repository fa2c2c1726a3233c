package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/service"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

func TestSummaryBuilder_StatusClassification(t *testing.T) {
	builder := service.NewSummaryBuilder(service.NewValuationEngine())
	cert := newTestCertificate(t, "10000", "4.5", valueobject.CompoundingMonthly, opened, maturity, "0", "0")

	active, err := builder.Build(cert, opened.AddDate(0, 0, 100))
	require.NoError(t, err)
	assert.Equal(t, valueobject.CertificateStatusActive, active.Status)

	near, err := builder.Build(cert, maturity.AddDate(0, 0, -15))
	require.NoError(t, err)
	assert.Equal(t, valueobject.CertificateStatusNearMaturity, near.Status)

	matured, err := builder.Build(cert, maturity)
	require.NoError(t, err)
	assert.Equal(t, valueobject.CertificateStatusMatured, matured.Status)
}

func TestSummaryBuilder_MaturedWinsOverNearMaturity(t *testing.T) {
	// At the maturity instant days-to-maturity is zero, which is matured,
	// never near-maturity.
	builder := service.NewSummaryBuilder(service.NewValuationEngine())
	cert := newTestCertificate(t, "10000", "4.5", valueobject.CompoundingMonthly, opened, maturity, "0", "0")

	summary, err := builder.Build(cert, maturity.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, valueobject.CertificateStatusMatured, summary.Status)
}

func TestSummaryBuilder_Returns(t *testing.T) {
	engine := service.NewValuationEngine()
	builder := service.NewSummaryBuilder(engine)
	cert := newTestCertificate(t, "10000", "4.5", valueobject.CompoundingMonthly, opened, maturity, "0", "4")

	summary, err := builder.Build(cert, maturity)
	require.NoError(t, err)

	valuation, err := engine.CurrentValue(cert, maturity)
	require.NoError(t, err)

	wantTotal := valuation.CurrentValue.Sub(cert.Principal())
	wantNet := valuation.NetCurrentValue.Sub(cert.Principal())
	assert.True(t, summary.TotalReturn.Equal(wantTotal))
	assert.True(t, summary.NetReturn.Equal(wantNet))
	assert.True(t, summary.NetReturn.LessThan(summary.TotalReturn),
		"withholding tax must reduce the net return")

	wantReturnPct := wantTotal.Div(cert.Principal()).Mul(decimal.NewFromInt(100))
	assert.True(t, summary.ReturnPercentage.Equal(wantReturnPct))
}

func TestSummaryBuilder_MonthlyRate(t *testing.T) {
	builder := service.NewSummaryBuilder(service.NewValuationEngine())
	cert := newTestCertificate(t, "10000", "4.5", valueobject.CompoundingMonthly, opened, maturity, "0", "0")

	summary, err := builder.Build(cert, opened)
	require.NoError(t, err)

	want := decimal.RequireFromString("4.5").Div(decimal.NewFromInt(12))
	assert.True(t, summary.MonthlyRatePercent.Equal(want),
		"monthly rate %s, want %s", summary.MonthlyRatePercent, want)
}

func TestSummaryBuilder_PropagatesValidationError(t *testing.T) {
	builder := service.NewSummaryBuilder(service.NewValuationEngine())
	cert := newTestCertificate(t, "0", "4.5", valueobject.CompoundingMonthly, opened, maturity, "0", "0")

	_, err := builder.Build(cert, opened)
	assert.Error(t, err)
}
