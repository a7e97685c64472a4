package storage

import (
	"context"

	"github.com/iudanet/finkeeper/internal/models"
)

// ExpenditureStorage defines interface for expenditure record persistence.
// Every read and write is scoped to the owning user: operations on a record
// that exists but belongs to someone else return ErrRecordNotFound.
type ExpenditureStorage interface {
	// CreateExpenditure inserts a new expenditure record
	CreateExpenditure(ctx context.Context, exp *models.Expenditure) error

	// GetExpenditure retrieves a record by id for the given owner
	// Returns ErrRecordNotFound if absent or owned by another user
	GetExpenditure(ctx context.Context, userID, id string) (*models.Expenditure, error)

	// ListExpenditures retrieves all records owned by the user
	// Returns empty slice if none found
	ListExpenditures(ctx context.Context, userID string) ([]*models.Expenditure, error)

	// UpdateExpenditure overwrites the mutable fields of a record
	// Returns ErrRecordNotFound if absent or owned by another user
	UpdateExpenditure(ctx context.Context, exp *models.Expenditure) error

	// DeleteExpenditure removes a record
	// Returns ErrRecordNotFound if absent or owned by another user
	DeleteExpenditure(ctx context.Context, userID, id string) error
}

// IncomeStorage defines interface for income record persistence.
// Ownership scoping follows the same rule as ExpenditureStorage.
type IncomeStorage interface {
	// CreateIncome inserts a new income record
	CreateIncome(ctx context.Context, inc *models.Income) error

	// GetIncome retrieves a record by id for the given owner
	// Returns ErrRecordNotFound if absent or owned by another user
	GetIncome(ctx context.Context, userID, id string) (*models.Income, error)

	// ListIncomes retrieves all records owned by the user
	// Returns empty slice if none found
	ListIncomes(ctx context.Context, userID string) ([]*models.Income, error)

	// UpdateIncome overwrites the mutable fields of a record
	// Returns ErrRecordNotFound if absent or owned by another user
	UpdateIncome(ctx context.Context, inc *models.Income) error

	// DeleteIncome removes a record
	// Returns ErrRecordNotFound if absent or owned by another user
	DeleteIncome(ctx context.Context, userID, id string) error
}
