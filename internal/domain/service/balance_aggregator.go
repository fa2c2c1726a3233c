package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
)

// BalanceAggregator is a domain service that derives pocket balances from
// their children and plans sub-pocket monthly contributions. Every method is a
// pure function of its arguments.
type BalanceAggregator struct{}

// NewBalanceAggregator creates a new BalanceAggregator.
func NewBalanceAggregator() *BalanceAggregator {
	return &BalanceAggregator{}
}

// FromMovements sums the signed amounts of the movements that count toward a
// balance: pending and orphaned movements are excluded, income adds, expense
// subtracts. An empty list sums to zero.
func (a *BalanceAggregator) FromMovements(movements []model.Movement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		if !m.CountsTowardBalance() {
			continue
		}
		balance = balance.Add(m.SignedAmount())
	}
	return balance
}

// FromSubPockets sums every sub-pocket balance, disabled ones and negative
// (debt) ones included. Disabling a sub-pocket only removes it from the
// monthly-contribution total, never from the stored balance.
func (a *BalanceAggregator) FromSubPockets(subPockets []model.SubPocket) decimal.Decimal {
	balance := decimal.Zero
	for _, sp := range subPockets {
		balance = balance.Add(sp.Balance())
	}
	return balance
}

// RefreshBalance recomputes the pocket's balance from the children matching
// its type and returns the updated copy. Fixed pockets aggregate sub-pockets,
// normal pockets aggregate movements; passing the wrong side (or omitting the
// required one, nil meaning absent) is a validation error.
func (a *BalanceAggregator) RefreshBalance(
	pocket model.Pocket,
	movements []model.Movement,
	subPockets []model.SubPocket,
	asOf time.Time,
) (model.Pocket, error) {
	if pocket.Type().IsFixed() {
		if subPockets == nil {
			return model.Pocket{}, fmt.Errorf("%w: fixed pocket %s requires sub-pockets", model.ErrValidation, pocket.ID())
		}
		if movements != nil {
			return model.Pocket{}, fmt.Errorf("%w: fixed pocket %s must not receive movements", model.ErrValidation, pocket.ID())
		}
		return pocket.WithBalance(a.FromSubPockets(subPockets), asOf), nil
	}

	if movements == nil {
		return model.Pocket{}, fmt.Errorf("%w: normal pocket %s requires movements", model.ErrValidation, pocket.ID())
	}
	if subPockets != nil {
		return model.Pocket{}, fmt.Errorf("%w: normal pocket %s must not receive sub-pockets", model.ErrValidation, pocket.ID())
	}
	return pocket.WithBalance(a.FromMovements(movements), asOf), nil
}

// TotalBalance sums the stored balances of all pockets, with no filtering.
func (a *BalanceAggregator) TotalBalance(pockets []model.Pocket) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pockets {
		total = total.Add(p.Balance())
	}
	return total
}
