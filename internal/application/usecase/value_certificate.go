package usecase

import (
	"context"
	"fmt"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/port"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/service"
)

// ValueCertificate handles valuing a single certificate of deposit at an instant.
type ValueCertificate struct {
	certRepo port.CertificateRepository
	engine   *service.ValuationEngine
}

func NewValueCertificate(certRepo port.CertificateRepository, engine *service.ValuationEngine) *ValueCertificate {
	return &ValueCertificate{certRepo: certRepo, engine: engine}
}

func (uc *ValueCertificate) Execute(ctx context.Context, req dto.ValueCertificateRequest) (dto.CertificateValuationResponse, error) {
	if req.AsOf.IsZero() {
		return dto.CertificateValuationResponse{}, fmt.Errorf("%w: as-of instant is required", model.ErrValidation)
	}

	cert, err := uc.certRepo.FindByID(ctx, req.CertificateID)
	if err != nil {
		return dto.CertificateValuationResponse{}, fmt.Errorf("failed to find certificate: %w", err)
	}

	valuation, err := uc.engine.CurrentValue(cert, req.AsOf)
	if err != nil {
		return dto.CertificateValuationResponse{}, fmt.Errorf("failed to value certificate %s: %w", cert.ID(), err)
	}

	return dto.CertificateValuationResponse{
		CertificateID:           cert.ID(),
		Name:                    cert.Name(),
		Currency:                cert.Currency().Code(),
		Principal:               cert.Principal(),
		CurrentValue:            valuation.CurrentValue,
		AccruedInterest:         valuation.AccruedInterest,
		TotalInterestAtMaturity: valuation.TotalInterestAtMaturity,
		EffectiveYieldPercent:   valuation.EffectiveYieldPercent,
		WithholdingTax:          valuation.WithholdingTax,
		NetInterest:             valuation.NetInterest,
		NetCurrentValue:         valuation.NetCurrentValue,
		DaysToMaturity:          valuation.DaysToMaturity,
		IsMatured:               valuation.IsMatured,
	}, nil
}
