package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/service"
)

// PlanContributions builds the monthly contribution plan for a fixed pocket:
// one line per sub-pocket with installment, amount due (debt included) and
// funding progress, plus the enabled total for the month.
type PlanContributions struct {
	pocketRepo    port.PocketRepository
	subPocketRepo port.SubPocketRepository
	aggregator    *service.BalanceAggregator
}

func NewPlanContributions(
	pocketRepo port.PocketRepository,
	subPocketRepo port.SubPocketRepository,
	aggregator *service.BalanceAggregator,
) *PlanContributions {
	return &PlanContributions{
		pocketRepo:    pocketRepo,
		subPocketRepo: subPocketRepo,
		aggregator:    aggregator,
	}
}

func (uc *PlanContributions) Execute(ctx context.Context, req dto.PlanContributionsRequest) (dto.PlanContributionsResponse, error) {
	pocket, err := uc.pocketRepo.FindByID(ctx, req.PocketID)
	if err != nil {
		return dto.PlanContributionsResponse{}, fmt.Errorf("failed to find pocket: %w", err)
	}
	if !pocket.Type().IsFixed() {
		return dto.PlanContributionsResponse{}, fmt.Errorf("%w: pocket %s is not a fixed pocket", model.ErrValidation, pocket.ID())
	}

	subPockets, err := uc.subPocketRepo.ListByPocket(ctx, pocket.ID())
	if err != nil {
		return dto.PlanContributionsResponse{}, fmt.Errorf("failed to list sub-pockets for pocket %s: %w", pocket.ID(), err)
	}

	lines := make([]dto.ContributionLine, 0, len(subPockets))
	for _, sp := range subPockets {
		progress := uc.aggregator.Progress(sp.Balance(), sp.ValueTotal())
		lines = append(lines, dto.ContributionLine{
			SubPocketID:         sp.ID(),
			Name:                sp.Name(),
			ValueTotal:          sp.ValueTotal(),
			Balance:             sp.Balance(),
			MonthlyContribution: uc.aggregator.MonthlyContribution(sp.ValueTotal(), sp.PeriodicityMonths(), sp.Balance()),
			AmountDue:           uc.aggregator.PeriodAmountDue(sp),
			ProgressPercent:     progress.Mul(decimal.NewFromInt(100)),
			Enabled:             sp.Enabled(),
			InDebt:              sp.InDebt(),
		})
	}

	return dto.PlanContributionsResponse{
		PocketID:          pocket.ID(),
		Lines:             lines,
		MonthlyFixedTotal: uc.aggregator.MonthlyFixedTotal(subPockets),
	}, nil
}
