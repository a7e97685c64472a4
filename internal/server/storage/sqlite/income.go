package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
)

// CreateIncome inserts a new income record
func (s *Storage) CreateIncome(ctx context.Context, inc *models.Income) error {
	query := `
		INSERT INTO incomes (id, user_id, name_of_revenue, amount, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		inc.ID,
		inc.UserID,
		inc.NameOfRevenue,
		inc.Amount,
		inc.CreatedAt,
		inc.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert income: %w", err)
	}

	return nil
}

// GetIncome retrieves a record by id for the given owner
func (s *Storage) GetIncome(ctx context.Context, userID, id string) (*models.Income, error) {
	query := `
		SELECT id, user_id, name_of_revenue, amount, created_at, modified_at
		FROM incomes
		WHERE id = ? AND user_id = ?
	`

	inc := &models.Income{}

	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&inc.ID,
		&inc.UserID,
		&inc.NameOfRevenue,
		&inc.Amount,
		&inc.CreatedAt,
		&inc.ModifiedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	return inc, nil
}

// ListIncomes retrieves all records owned by the user
func (s *Storage) ListIncomes(ctx context.Context, userID string) ([]*models.Income, error) {
	query := `
		SELECT id, user_id, name_of_revenue, amount, created_at, modified_at
		FROM incomes
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var incs []*models.Income

	for rows.Next() {
		inc := &models.Income{}
		if err := rows.Scan(
			&inc.ID,
			&inc.UserID,
			&inc.NameOfRevenue,
			&inc.Amount,
			&inc.CreatedAt,
			&inc.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incs = append(incs, inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return incs, nil
}

// UpdateIncome overwrites the mutable fields of a record
func (s *Storage) UpdateIncome(ctx context.Context, inc *models.Income) error {
	query := `
		UPDATE incomes
		SET name_of_revenue = ?, amount = ?, modified_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		inc.NameOfRevenue,
		inc.Amount,
		inc.ModifiedAt,
		inc.ID,
		inc.UserID,
	)

	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// DeleteIncome removes a record
func (s *Storage) DeleteIncome(ctx context.Context, userID, id string) error {
	query := `DELETE FROM incomes WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}
