package usecase

import (
	"context"
	"fmt"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/service"
)

const TopicPocketBalance = "finance.pocket.balance"

// RefreshPocketBalance recomputes one pocket's balance from its children,
// persists the updated pocket and publishes the balance-updated event.
type RefreshPocketBalance struct {
	pocketRepo    port.PocketRepository
	movementRepo  port.MovementRepository
	subPocketRepo port.SubPocketRepository
	publisher     port.EventPublisher
	aggregator    *service.BalanceAggregator
}

func NewRefreshPocketBalance(
	pocketRepo port.PocketRepository,
	movementRepo port.MovementRepository,
	subPocketRepo port.SubPocketRepository,
	publisher port.EventPublisher,
	aggregator *service.BalanceAggregator,
) *RefreshPocketBalance {
	return &RefreshPocketBalance{
		pocketRepo:    pocketRepo,
		movementRepo:  movementRepo,
		subPocketRepo: subPocketRepo,
		publisher:     publisher,
		aggregator:    aggregator,
	}
}

func (uc *RefreshPocketBalance) Execute(ctx context.Context, req dto.RefreshPocketBalanceRequest) (dto.PocketBalanceResponse, error) {
	if req.AsOf.IsZero() {
		return dto.PocketBalanceResponse{}, fmt.Errorf("%w: as-of instant is required", model.ErrValidation)
	}

	pocket, err := uc.pocketRepo.FindByID(ctx, req.PocketID)
	if err != nil {
		return dto.PocketBalanceResponse{}, fmt.Errorf("failed to find pocket: %w", err)
	}

	// The aggregator is strict about which children a pocket type accepts,
	// so only the matching side is loaded.
	var movements []model.Movement
	var subPockets []model.SubPocket
	if pocket.Type().IsFixed() {
		subPockets, err = uc.subPocketRepo.ListByPocket(ctx, pocket.ID())
		if err != nil {
			return dto.PocketBalanceResponse{}, fmt.Errorf("failed to list sub-pockets for pocket %s: %w", pocket.ID(), err)
		}
		if subPockets == nil {
			subPockets = []model.SubPocket{}
		}
	} else {
		movements, err = uc.movementRepo.ListByPocket(ctx, pocket.ID())
		if err != nil {
			return dto.PocketBalanceResponse{}, fmt.Errorf("failed to list movements for pocket %s: %w", pocket.ID(), err)
		}
		if movements == nil {
			movements = []model.Movement{}
		}
	}

	refreshed, err := uc.aggregator.RefreshBalance(pocket, movements, subPockets, req.AsOf)
	if err != nil {
		return dto.PocketBalanceResponse{}, fmt.Errorf("failed to refresh balance for pocket %s: %w", pocket.ID(), err)
	}

	if err := uc.pocketRepo.Save(ctx, refreshed); err != nil {
		return dto.PocketBalanceResponse{}, fmt.Errorf("failed to save pocket %s: %w", pocket.ID(), err)
	}

	if evts := refreshed.DomainEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, TopicPocketBalance, evts...); err != nil {
			return dto.PocketBalanceResponse{}, fmt.Errorf("failed to publish events for pocket %s: %w", pocket.ID(), err)
		}
	}

	return dto.PocketBalanceResponse{
		PocketID:  refreshed.ID(),
		AccountID: refreshed.AccountID(),
		Name:      refreshed.Name(),
		Type:      refreshed.Type().String(),
		Balance:   refreshed.Balance(),
		Currency:  refreshed.Currency().Code(),
		UpdatedAt: refreshed.UpdatedAt(),
	}, nil
}
