package service

import (
	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
)

// MonthlyContribution returns the recurring per-period amount still owed
// toward a savings target: the target divided over the periodicity, capped by
// what remains so the target is never overshot. Once the target is reached or
// exceeded the result is zero or negative; callers must not treat that as an
// error. A non-positive periodicity contributes nothing.
func (a *BalanceAggregator) MonthlyContribution(valueTotal decimal.Decimal, periodicityMonths int, balance decimal.Decimal) decimal.Decimal {
	if periodicityMonths <= 0 {
		return decimal.Zero
	}

	base := valueTotal.Div(decimal.NewFromInt(int64(periodicityMonths)))
	remaining := valueTotal.Sub(balance)
	if remaining.LessThan(base) {
		return remaining
	}
	return base
}

// PeriodAmountDue returns what the sub-pocket actually owes this period: the
// normal installment, plus the absolute value of any negative balance. A
// missed contribution (debt) is caught up on top of the installment, not
// instead of it.
func (a *BalanceAggregator) PeriodAmountDue(sp model.SubPocket) decimal.Decimal {
	due := a.MonthlyContribution(sp.ValueTotal(), sp.PeriodicityMonths(), sp.Balance())
	if sp.InDebt() {
		due = due.Add(sp.Balance().Abs())
	}
	return due
}

// MonthlyFixedTotal sums the period amounts due over the enabled sub-pockets.
// Disabled sub-pockets contribute nothing regardless of balance or debt.
func (a *BalanceAggregator) MonthlyFixedTotal(subPockets []model.SubPocket) decimal.Decimal {
	total := decimal.Zero
	for _, sp := range subPockets {
		if !sp.Enabled() {
			continue
		}
		total = total.Add(a.PeriodAmountDue(sp))
	}
	return total
}

// Progress returns how much of the target has been funded, as a fraction
// clamped at 1. Balances past the target never report more than complete,
// and a non-positive target reports zero. Presentation code converts to a
// percentage; the engine's canonical unit is the fraction.
func (a *BalanceAggregator) Progress(balance, valueTotal decimal.Decimal) decimal.Decimal {
	if valueTotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	ratio := balance.Div(valueTotal)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}
