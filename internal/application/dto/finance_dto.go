package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Certificate DTOs ---

// ValueCertificateRequest is the input DTO for valuing a certificate of deposit.
// AsOf is required: the caller owns the clock so valuations stay reproducible.
type ValueCertificateRequest struct {
	CertificateID uuid.UUID
	AsOf          time.Time
}

// CertificateValuationResponse is the output DTO for a certificate valuation.
type CertificateValuationResponse struct {
	CertificateID           uuid.UUID
	Name                    string
	Currency                string
	Principal               decimal.Decimal
	CurrentValue            decimal.Decimal
	AccruedInterest         decimal.Decimal
	TotalInterestAtMaturity decimal.Decimal
	EffectiveYieldPercent   decimal.Decimal
	WithholdingTax          decimal.Decimal
	NetInterest             decimal.Decimal
	NetCurrentValue         decimal.Decimal
	DaysToMaturity          int
	IsMatured               bool
}

// SummarizeCertificateRequest is the input DTO for building a certificate summary.
type SummarizeCertificateRequest struct {
	CertificateID uuid.UUID
	AsOf          time.Time
}

// CertificateSummaryResponse is the output DTO for a certificate summary.
type CertificateSummaryResponse struct {
	CertificateID       uuid.UUID
	Name                string
	Status              string
	Currency            string
	Principal           decimal.Decimal
	CurrentValue        decimal.Decimal
	NetCurrentValue     decimal.Decimal
	TotalReturn         decimal.Decimal
	NetReturn           decimal.Decimal
	ReturnPercentage    decimal.Decimal
	NetReturnPercentage decimal.Decimal
	MonthlyRatePercent  decimal.Decimal
	DaysToMaturity      int
	IsMatured           bool
}

// --- Pocket DTOs ---

// RefreshPocketBalanceRequest is the input DTO for recomputing one pocket's balance.
type RefreshPocketBalanceRequest struct {
	PocketID uuid.UUID
	AsOf     time.Time
}

// PocketBalanceResponse is the output DTO for a refreshed pocket.
type PocketBalanceResponse struct {
	PocketID  uuid.UUID
	AccountID uuid.UUID
	Name      string
	Type      string
	Balance   decimal.Decimal
	Currency  string
	UpdatedAt time.Time
}

// RefreshAccountBalancesRequest is the input DTO for batch-refreshing every
// pocket of an account.
type RefreshAccountBalancesRequest struct {
	AccountID uuid.UUID
	AsOf      time.Time
}

// RefreshAccountBalancesResponse reports the batch outcome. Skipped pockets
// failed individually and were logged, not fatal.
type RefreshAccountBalancesResponse struct {
	PocketsRefreshed int
	PocketsSkipped   int
	TotalBalance     decimal.Decimal
}

// AccountTotalRequest is the input DTO for summing an account's pocket balances.
type AccountTotalRequest struct {
	AccountID uuid.UUID
}

// AccountTotalResponse is the output DTO for an account total.
type AccountTotalResponse struct {
	Total    decimal.Decimal
	Currency string
	Pockets  int
}

// --- Contribution planning DTOs ---

// PlanContributionsRequest is the input DTO for a fixed pocket's monthly plan.
type PlanContributionsRequest struct {
	PocketID uuid.UUID
}

// ContributionLine is one sub-pocket's row in a monthly plan. ProgressPercent
// is the engine's 0..1 progress fraction converted for display.
type ContributionLine struct {
	SubPocketID         uuid.UUID
	Name                string
	ValueTotal          decimal.Decimal
	Balance             decimal.Decimal
	MonthlyContribution decimal.Decimal
	AmountDue           decimal.Decimal
	ProgressPercent     decimal.Decimal
	Enabled             bool
	InDebt              bool
}

// PlanContributionsResponse is the output DTO for a monthly contribution plan.
type PlanContributionsResponse struct {
	PocketID          uuid.UUID
	Lines             []ContributionLine
	MonthlyFixedTotal decimal.Decimal
}
