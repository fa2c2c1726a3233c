package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/event"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
	"github.com/jdramirezl/finance-app-sub001/pkg/events"
	"github.com/jdramirezl/finance-app-sub001/pkg/money"
)

// Pocket is a named sub-allocation of an account's money. Its balance is
// always derived: normal pockets aggregate their movements, fixed pockets
// aggregate their sub-pockets. Callers never set the balance directly;
// WithBalance is the only write path and it records a domain event.
type Pocket struct {
	updatedAt time.Time
	name      string
	balance   decimal.Decimal
	evts      events.EventCollector
	pocketTyp valueobject.PocketType
	currency  money.Currency
	id        uuid.UUID
	accountID uuid.UUID
}

// NewPocket creates a validated Pocket with a zero balance.
func NewPocket(
	accountID uuid.UUID,
	name string,
	pocketType valueobject.PocketType,
	currency money.Currency,
) (Pocket, error) {
	if accountID == uuid.Nil {
		return Pocket{}, fmt.Errorf("%w: account ID is required", ErrValidation)
	}
	if name == "" {
		return Pocket{}, fmt.Errorf("%w: pocket name is required", ErrValidation)
	}

	return Pocket{
		id:        uuid.New(),
		accountID: accountID,
		name:      name,
		pocketTyp: pocketType,
		balance:   decimal.Zero,
		currency:  currency,
	}, nil
}

// ReconstructPocket recreates a Pocket from persistence (no validation, no events).
func ReconstructPocket(
	id, accountID uuid.UUID,
	name string,
	pocketType valueobject.PocketType,
	balance decimal.Decimal,
	currency money.Currency,
	updatedAt time.Time,
) Pocket {
	return Pocket{
		id:        id,
		accountID: accountID,
		name:      name,
		pocketTyp: pocketType,
		balance:   balance,
		currency:  currency,
		updatedAt: updatedAt,
	}
}

// WithBalance returns a copy of the pocket carrying the freshly aggregated
// balance and a pocket.balance.updated domain event. The receiver is not
// modified.
func (p Pocket) WithBalance(balance decimal.Decimal, asOf time.Time) Pocket {
	updated := p
	updated.balance = balance
	updated.updatedAt = asOf
	updated.evts = p.evts.Clone()
	updated.evts.Record(
		event.NewPocketBalanceUpdated(p.id, p.accountID, p.balance, balance, p.currency.Code(), asOf),
	)
	return updated
}

// Accessors
func (p Pocket) ID() uuid.UUID                    { return p.id }
func (p Pocket) AccountID() uuid.UUID             { return p.accountID }
func (p Pocket) Name() string                     { return p.name }
func (p Pocket) Type() valueobject.PocketType     { return p.pocketTyp }
func (p Pocket) Balance() decimal.Decimal         { return p.balance }
func (p Pocket) Currency() money.Currency         { return p.currency }
func (p Pocket) UpdatedAt() time.Time             { return p.updatedAt }
func (p Pocket) DomainEvents() []events.DomainEvent { return p.evts.Events() }

// BalanceMoney returns the balance as a Money value in the pocket's currency.
func (p Pocket) BalanceMoney() money.Money {
	return money.New(p.balance, p.currency)
}

// ClearDomainEvents returns the collected domain events and clears them.
func (p *Pocket) ClearDomainEvents() []events.DomainEvent {
	return p.evts.ClearEvents()
}
