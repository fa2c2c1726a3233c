package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdramirezl/finance-app-sub001/internal/application/dto"
	"github.com/jdramirezl/finance-app-sub001/internal/application/usecase"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
	"github.com/jdramirezl/finance-app-sub001/internal/infrastructure/memory"
	"github.com/jdramirezl/finance-app-sub001/pkg/money"
)

func savePocketWithBalance(t *testing.T, repo *memory.PocketRepository, accountID uuid.UUID, balance string, currency money.Currency) {
	t.Helper()
	pocket := model.ReconstructPocket(
		uuid.New(), accountID, "pocket",
		valueobject.PocketTypeNormal,
		decimal.RequireFromString(balance), currency, time.Time{},
	)
	require.NoError(t, repo.Save(context.Background(), pocket))
}

func TestAccountTotal(t *testing.T) {
	repo := memory.NewPocketRepository()
	accountID := uuid.New()
	savePocketWithBalance(t, repo, accountID, "800", money.COP)
	savePocketWithBalance(t, repo, accountID, "350", money.COP)
	savePocketWithBalance(t, repo, accountID, "-150", money.COP)
	savePocketWithBalance(t, repo, uuid.New(), "9999", money.COP)

	resp, err := usecase.NewAccountTotal(repo).Execute(context.Background(), dto.AccountTotalRequest{AccountID: accountID})
	require.NoError(t, err)

	assert.Equal(t, "1000.00", resp.Total.StringFixed(2))
	assert.Equal(t, "COP", resp.Currency)
	assert.Equal(t, 3, resp.Pockets)
}

func TestAccountTotal_EmptyAccount(t *testing.T) {
	resp, err := usecase.NewAccountTotal(memory.NewPocketRepository()).Execute(context.Background(), dto.AccountTotalRequest{AccountID: uuid.New()})
	require.NoError(t, err)

	assert.True(t, resp.Total.IsZero())
	assert.Equal(t, 0, resp.Pockets)
}

func TestAccountTotal_MixedCurrencies(t *testing.T) {
	repo := memory.NewPocketRepository()
	accountID := uuid.New()
	savePocketWithBalance(t, repo, accountID, "800", money.COP)
	savePocketWithBalance(t, repo, accountID, "100", money.USD)

	_, err := usecase.NewAccountTotal(repo).Execute(context.Background(), dto.AccountTotalRequest{AccountID: accountID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed currencies")
}
