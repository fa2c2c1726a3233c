package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/pkg/events"
)

// CertificateRepository defines the persistence boundary for certificates of
// deposit. The calculation engine never touches storage itself; the CRUD layer
// implements these against whichever backend it routes to.
type CertificateRepository interface {
	// Save persists a certificate (insert or update).
	Save(ctx context.Context, cert model.Certificate) error
	// FindByID retrieves a certificate by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.Certificate, error)
	// ListByAccount returns all certificates held by an account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Certificate, error)
}

// PocketRepository defines persistence operations for pockets.
type PocketRepository interface {
	// Save persists a pocket (insert or update).
	Save(ctx context.Context, pocket model.Pocket) error
	// FindByID retrieves a pocket by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.Pocket, error)
	// ListByAccount returns all pockets owned by an account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Pocket, error)
}

// MovementRepository supplies movement snapshots for balance aggregation.
type MovementRepository interface {
	// ListByPocket returns every movement recorded against a pocket,
	// including pending and orphaned ones; the aggregator filters.
	ListByPocket(ctx context.Context, pocketID uuid.UUID) ([]model.Movement, error)
}

// SubPocketRepository supplies sub-pocket snapshots for balance aggregation
// and contribution planning.
type SubPocketRepository interface {
	// ListByPocket returns every sub-pocket of a fixed pocket, disabled ones included.
	ListByPocket(ctx context.Context, pocketID uuid.UUID) ([]model.SubPocket, error)
}

// EventPublisher hands domain events to whatever transport the caller wires in.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
