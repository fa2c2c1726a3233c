package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
)

// RefreshAccountBalances batch-refreshes every pocket of an account. A pocket
// that fails to refresh is logged and skipped; one broken pocket must not
// block the rest of the account.
type RefreshAccountBalances struct {
	pocketRepo port.PocketRepository
	refresh    *RefreshPocketBalance
	logger     *slog.Logger
}

func NewRefreshAccountBalances(
	pocketRepo port.PocketRepository,
	refresh *RefreshPocketBalance,
	logger *slog.Logger,
) *RefreshAccountBalances {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshAccountBalances{pocketRepo: pocketRepo, refresh: refresh, logger: logger}
}

func (uc *RefreshAccountBalances) Execute(ctx context.Context, req dto.RefreshAccountBalancesRequest) (dto.RefreshAccountBalancesResponse, error) {
	if req.AsOf.IsZero() {
		return dto.RefreshAccountBalancesResponse{}, fmt.Errorf("%w: as-of instant is required", model.ErrValidation)
	}

	pockets, err := uc.pocketRepo.ListByAccount(ctx, req.AccountID)
	if err != nil {
		return dto.RefreshAccountBalancesResponse{}, fmt.Errorf("failed to list pockets: %w", err)
	}

	refreshed := 0
	skipped := 0
	total := decimal.Zero

	for _, pocket := range pockets {
		resp, err := uc.refresh.Execute(ctx, dto.RefreshPocketBalanceRequest{
			PocketID: pocket.ID(),
			AsOf:     req.AsOf,
		})
		if err != nil {
			uc.logger.Warn("skipping pocket: refresh failed",
				"pocket_id", pocket.ID(),
				"account_id", req.AccountID,
				"error", err,
			)
			skipped++
			continue
		}
		total = total.Add(resp.Balance)
		refreshed++
	}

	return dto.RefreshAccountBalancesResponse{
		PocketsRefreshed: refreshed,
		PocketsSkipped:   skipped,
		TotalBalance:     total,
	}, nil
}
