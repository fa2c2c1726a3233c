package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
	"github.com/jdramirezl/finance-app-sub001/pkg/money"
)

// AccountTotal sums the stored balances of every pocket in an account.
// Balances are summed as Money so an account holding mixed-currency pockets
// surfaces an error instead of a meaningless number; conversion belongs to the
// exchange-rate collaborator, not this engine.
type AccountTotal struct {
	pocketRepo port.PocketRepository
}

func NewAccountTotal(pocketRepo port.PocketRepository) *AccountTotal {
	return &AccountTotal{pocketRepo: pocketRepo}
}

func (uc *AccountTotal) Execute(ctx context.Context, req dto.AccountTotalRequest) (dto.AccountTotalResponse, error) {
	pockets, err := uc.pocketRepo.ListByAccount(ctx, req.AccountID)
	if err != nil {
		return dto.AccountTotalResponse{}, fmt.Errorf("failed to list pockets: %w", err)
	}

	if len(pockets) == 0 {
		return dto.AccountTotalResponse{Total: decimal.Zero}, nil
	}

	total := money.Zero(pockets[0].Currency())
	for _, p := range pockets {
		total, err = total.Add(p.BalanceMoney())
		if err != nil {
			return dto.AccountTotalResponse{}, fmt.Errorf("account %s holds mixed currencies: %w", req.AccountID, err)
		}
	}

	return dto.AccountTotalResponse{
		Total:    total.Amount(),
		Currency: total.Currency().Code(),
		Pockets:  len(pockets),
	}, nil
}
