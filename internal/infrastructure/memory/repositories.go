package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
)

// CertificateRepository is an in-memory implementation of port.CertificateRepository.
type CertificateRepository struct {
	mu    sync.RWMutex
	certs map[uuid.UUID]model.Certificate
}

// NewCertificateRepository creates an empty in-memory certificate repository.
func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{certs: make(map[uuid.UUID]model.Certificate)}
}

// Save stores the certificate, overwriting any existing entry with the same ID.
func (r *CertificateRepository) Save(_ context.Context, cert model.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.certs[cert.ID()] = cert
	return nil
}

// FindByID retrieves a certificate by ID.
func (r *CertificateRepository) FindByID(_ context.Context, id uuid.UUID) (model.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, ok := r.certs[id]
	if !ok {
		return model.Certificate{}, fmt.Errorf("certificate %s not found", id)
	}
	return cert, nil
}

// ListByAccount returns all certificates held by the account.
func (r *CertificateRepository) ListByAccount(_ context.Context, accountID uuid.UUID) ([]model.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Certificate
	for _, cert := range r.certs {
		if cert.AccountID() == accountID {
			out = append(out, cert)
		}
	}
	return out, nil
}

// PocketRepository is an in-memory implementation of port.PocketRepository.
type PocketRepository struct {
	mu      sync.RWMutex
	pockets map[uuid.UUID]model.Pocket
}

// NewPocketRepository creates an empty in-memory pocket repository.
func NewPocketRepository() *PocketRepository {
	return &PocketRepository{pockets: make(map[uuid.UUID]model.Pocket)}
}

// Save stores the pocket, overwriting any existing entry with the same ID.
func (r *PocketRepository) Save(_ context.Context, pocket model.Pocket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pockets[pocket.ID()] = pocket
	return nil
}

// FindByID retrieves a pocket by ID.
func (r *PocketRepository) FindByID(_ context.Context, id uuid.UUID) (model.Pocket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pocket, ok := r.pockets[id]
	if !ok {
		return model.Pocket{}, fmt.Errorf("pocket %s not found", id)
	}
	return pocket, nil
}

// ListByAccount returns all pockets owned by the account.
func (r *PocketRepository) ListByAccount(_ context.Context, accountID uuid.UUID) ([]model.Pocket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Pocket
	for _, pocket := range r.pockets {
		if pocket.AccountID() == accountID {
			out = append(out, pocket)
		}
	}
	return out, nil
}

// MovementRepository is an in-memory implementation of port.MovementRepository.
type MovementRepository struct {
	mu        sync.RWMutex
	movements []model.Movement
}

// NewMovementRepository creates an empty in-memory movement repository.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

// Add appends a movement. Intended for seeding test fixtures and embedded callers.
func (r *MovementRepository) Add(movements ...model.Movement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, movements...)
}

// ListByPocket returns every movement recorded against the pocket.
func (r *MovementRepository) ListByPocket(_ context.Context, pocketID uuid.UUID) ([]model.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Movement{}
	for _, m := range r.movements {
		if m.PocketID() == pocketID {
			out = append(out, m)
		}
	}
	return out, nil
}

// SubPocketRepository is an in-memory implementation of port.SubPocketRepository.
type SubPocketRepository struct {
	mu         sync.RWMutex
	subPockets []model.SubPocket
}

// NewSubPocketRepository creates an empty in-memory sub-pocket repository.
func NewSubPocketRepository() *SubPocketRepository {
	return &SubPocketRepository{}
}

// Add appends a sub-pocket. Intended for seeding test fixtures and embedded callers.
func (r *SubPocketRepository) Add(subPockets ...model.SubPocket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subPockets = append(r.subPockets, subPockets...)
}

// ListByPocket returns every sub-pocket of the pocket, disabled ones included.
func (r *SubPocketRepository) ListByPocket(_ context.Context, pocketID uuid.UUID) ([]model.SubPocket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.SubPocket{}
	for _, sp := range r.subPockets {
		if sp.PocketID() == pocketID {
			out = append(out, sp)
		}
	}
	return out, nil
}
