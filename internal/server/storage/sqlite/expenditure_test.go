package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
)

func newTestExpenditure(userID string) *models.Expenditure {
	now := time.Now()
	return &models.Expenditure{
		ID:              uuid.New().String(),
		UserID:          userID,
		Category:        "transport",
		NameOfItem:      "bus pass",
		EstimatedAmount: 50,
		CreatedAt:       now,
		ModifiedAt:      now,
	}
}

func TestExpenditureStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)
	exp := newTestExpenditure(userID)

	err := s.CreateExpenditure(ctx, exp)
	require.NoError(t, err)

	retrieved, err := s.GetExpenditure(ctx, userID, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, exp.ID, retrieved.ID)
	assert.Equal(t, exp.Category, retrieved.Category)
	assert.Equal(t, exp.NameOfItem, retrieved.NameOfItem)
	assert.Equal(t, exp.EstimatedAmount, retrieved.EstimatedAmount)
}

func TestExpenditureStorage_GetForeignUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createStorageUser(t, ctx, s)
	other := createStorageUser(t, ctx, s)

	exp := newTestExpenditure(owner)
	require.NoError(t, s.CreateExpenditure(ctx, exp))

	// Чужой userID не находит запись
	_, err := s.GetExpenditure(ctx, other, exp.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestExpenditureStorage_List(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createStorageUser(t, ctx, s)
	other := createStorageUser(t, ctx, s)

	require.NoError(t, s.CreateExpenditure(ctx, newTestExpenditure(owner)))
	require.NoError(t, s.CreateExpenditure(ctx, newTestExpenditure(owner)))
	require.NoError(t, s.CreateExpenditure(ctx, newTestExpenditure(other)))

	exps, err := s.ListExpenditures(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, exps, 2)

	for _, exp := range exps {
		assert.Equal(t, owner, exp.UserID)
	}
}

func TestExpenditureStorage_Update(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)
	exp := newTestExpenditure(userID)
	require.NoError(t, s.CreateExpenditure(ctx, exp))

	exp.Category = "food"
	exp.NameOfItem = "groceries"
	exp.EstimatedAmount = 120
	exp.ModifiedAt = time.Now()

	err := s.UpdateExpenditure(ctx, exp)
	require.NoError(t, err)

	retrieved, err := s.GetExpenditure(ctx, userID, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, "food", retrieved.Category)
	assert.Equal(t, "groceries", retrieved.NameOfItem)
	assert.Equal(t, int64(120), retrieved.EstimatedAmount)
}

func TestExpenditureStorage_UpdateForeignUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createStorageUser(t, ctx, s)
	other := createStorageUser(t, ctx, s)

	exp := newTestExpenditure(owner)
	require.NoError(t, s.CreateExpenditure(ctx, exp))

	hijacked := *exp
	hijacked.UserID = other
	hijacked.Category = "stolen"

	err := s.UpdateExpenditure(ctx, &hijacked)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Запись владельца не изменилась
	retrieved, err := s.GetExpenditure(ctx, owner, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, "transport", retrieved.Category)
}

func TestExpenditureStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)
	exp := newTestExpenditure(userID)
	require.NoError(t, s.CreateExpenditure(ctx, exp))

	err := s.DeleteExpenditure(ctx, userID, exp.ID)
	require.NoError(t, err)

	// Повторное удаление возвращает ErrRecordNotFound
	err = s.DeleteExpenditure(ctx, userID, exp.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestExpenditureStorage_DeleteForeignUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createStorageUser(t, ctx, s)
	other := createStorageUser(t, ctx, s)

	exp := newTestExpenditure(owner)
	require.NoError(t, s.CreateExpenditure(ctx, exp))

	err := s.DeleteExpenditure(ctx, other, exp.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Запись на месте
	_, err = s.GetExpenditure(ctx, owner, exp.ID)
	require.NoError(t, err)
}
