package usecase

import (
	"context"
	"fmt"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/service"
)

// SummarizeCertificate handles building the presentation summary of a certificate.
type SummarizeCertificate struct {
	certRepo port.CertificateRepository
	builder  *service.SummaryBuilder
}

func NewSummarizeCertificate(certRepo port.CertificateRepository, builder *service.SummaryBuilder) *SummarizeCertificate {
	return &SummarizeCertificate{certRepo: certRepo, builder: builder}
}

func (uc *SummarizeCertificate) Execute(ctx context.Context, req dto.SummarizeCertificateRequest) (dto.CertificateSummaryResponse, error) {
	if req.AsOf.IsZero() {
		return dto.CertificateSummaryResponse{}, fmt.Errorf("%w: as-of instant is required", model.ErrValidation)
	}

	cert, err := uc.certRepo.FindByID(ctx, req.CertificateID)
	if err != nil {
		return dto.CertificateSummaryResponse{}, fmt.Errorf("failed to find certificate: %w", err)
	}

	summary, err := uc.builder.Build(cert, req.AsOf)
	if err != nil {
		return dto.CertificateSummaryResponse{}, fmt.Errorf("failed to summarize certificate %s: %w", cert.ID(), err)
	}

	return dto.CertificateSummaryResponse{
		CertificateID:       cert.ID(),
		Name:                cert.Name(),
		Status:              summary.Status.String(),
		Currency:            cert.Currency().Code(),
		Principal:           cert.Principal(),
		CurrentValue:        summary.Valuation.CurrentValue,
		NetCurrentValue:     summary.Valuation.NetCurrentValue,
		TotalReturn:         summary.TotalReturn,
		NetReturn:           summary.NetReturn,
		ReturnPercentage:    summary.ReturnPercentage,
		NetReturnPercentage: summary.NetReturnPercentage,
		MonthlyRatePercent:  summary.MonthlyRatePercent,
		DaysToMaturity:      summary.Valuation.DaysToMaturity,
		IsMatured:           summary.Valuation.IsMatured,
	}, nil
}
