package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/pkg/events"
)

const AggregateTypePocket = "Pocket"

// PocketBalanceUpdated is emitted when a pocket's balance is recomputed from
// its children. The CRUD layer consumes it to persist the new balance and
// refresh account totals.
type PocketBalanceUpdated struct {
	events.BaseEvent
	PocketID        uuid.UUID `json:"pocket_id"`
	AccountID       uuid.UUID `json:"account_id"`
	PreviousBalance string    `json:"previous_balance"`
	NewBalance      string    `json:"new_balance"`
	Currency        string    `json:"currency"`
	AsOf            time.Time `json:"as_of"`
}

func NewPocketBalanceUpdated(pocketID, accountID uuid.UUID, previous, updated decimal.Decimal, currency string, asOf time.Time) PocketBalanceUpdated {
	payload, _ := json.Marshal(struct {
		PocketID        uuid.UUID `json:"pocket_id"`
		AccountID       uuid.UUID `json:"account_id"`
		PreviousBalance string    `json:"previous_balance"`
		NewBalance      string    `json:"new_balance"`
		Currency        string    `json:"currency"`
		AsOf            time.Time `json:"as_of"`
	}{pocketID, accountID, previous.String(), updated.String(), currency, asOf})

	return PocketBalanceUpdated{
		BaseEvent:       events.NewBaseEvent("pocket.balance.updated", pocketID, AggregateTypePocket, asOf, payload),
		PocketID:        pocketID,
		AccountID:       accountID,
		PreviousBalance: previous.String(),
		NewBalance:      updated.String(),
		Currency:        currency,
		AsOf:            asOf,
	}
}
