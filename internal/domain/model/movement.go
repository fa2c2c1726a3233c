package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

// Movement is a single income or expense entry in a pocket. Pending movements
// have not cleared yet; orphaned movements lost their owning account or pocket
// and are retained for audit only. Both are excluded from balance aggregation.
type Movement struct {
	occurredAt time.Time
	concept    string
	amount     decimal.Decimal
	category   valueobject.MovementCategory
	isPending  bool
	isOrphaned bool
	id         uuid.UUID
	pocketID   uuid.UUID
}

// NewMovement creates a validated Movement. Amounts are unsigned; the category
// carries the sign.
func NewMovement(
	pocketID uuid.UUID,
	concept string,
	amount decimal.Decimal,
	category valueobject.MovementCategory,
	occurredAt time.Time,
) (Movement, error) {
	if pocketID == uuid.Nil {
		return Movement{}, fmt.Errorf("%w: pocket ID is required", ErrValidation)
	}
	if amount.IsNegative() {
		return Movement{}, fmt.Errorf("%w: movement amount must not be negative", ErrValidation)
	}
	if !category.IsIncome() && !category.IsExpense() {
		return Movement{}, fmt.Errorf("%w: invalid movement category %q", ErrValidation, category)
	}

	return Movement{
		id:         uuid.New(),
		pocketID:   pocketID,
		concept:    concept,
		amount:     amount,
		category:   category,
		occurredAt: occurredAt,
	}, nil
}

// ReconstructMovement recreates a Movement from persistence (no validation).
func ReconstructMovement(
	id, pocketID uuid.UUID,
	concept string,
	amount decimal.Decimal,
	category valueobject.MovementCategory,
	isPending, isOrphaned bool,
	occurredAt time.Time,
) Movement {
	return Movement{
		id:         id,
		pocketID:   pocketID,
		concept:    concept,
		amount:     amount,
		category:   category,
		isPending:  isPending,
		isOrphaned: isOrphaned,
		occurredAt: occurredAt,
	}
}

// Accessors
func (m Movement) ID() uuid.UUID                          { return m.id }
func (m Movement) PocketID() uuid.UUID                    { return m.pocketID }
func (m Movement) Concept() string                        { return m.concept }
func (m Movement) Amount() decimal.Decimal                { return m.amount }
func (m Movement) Category() valueobject.MovementCategory { return m.category }
func (m Movement) IsPending() bool                        { return m.isPending }
func (m Movement) IsOrphaned() bool                       { return m.isOrphaned }
func (m Movement) OccurredAt() time.Time                  { return m.occurredAt }

// CountsTowardBalance returns true if the movement participates in balance
// aggregation: cleared and still owned.
func (m Movement) CountsTowardBalance() bool {
	return !m.isPending && !m.isOrphaned
}

// SignedAmount returns the amount with the sign its category implies:
// positive for income, negative for expense.
func (m Movement) SignedAmount() decimal.Decimal {
	if m.category.IsExpense() {
		return m.amount.Neg()
	}
	return m.amount
}
