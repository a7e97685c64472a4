package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
)

// CreateExpenditure inserts a new expenditure record
func (s *Storage) CreateExpenditure(ctx context.Context, exp *models.Expenditure) error {
	query := `
		INSERT INTO expenditures (id, user_id, category, name_of_item, estimated_amount, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		exp.ID,
		exp.UserID,
		exp.Category,
		exp.NameOfItem,
		exp.EstimatedAmount,
		exp.CreatedAt,
		exp.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert expenditure: %w", err)
	}

	return nil
}

// GetExpenditure retrieves a record by id for the given owner
func (s *Storage) GetExpenditure(ctx context.Context, userID, id string) (*models.Expenditure, error) {
	// Условие по user_id скрывает чужие записи: для вызывающего они не существуют
	query := `
		SELECT id, user_id, category, name_of_item, estimated_amount, created_at, modified_at
		FROM expenditures
		WHERE id = ? AND user_id = ?
	`

	exp := &models.Expenditure{}

	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&exp.ID,
		&exp.UserID,
		&exp.Category,
		&exp.NameOfItem,
		&exp.EstimatedAmount,
		&exp.CreatedAt,
		&exp.ModifiedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get expenditure: %w", err)
	}

	return exp, nil
}

// ListExpenditures retrieves all records owned by the user
func (s *Storage) ListExpenditures(ctx context.Context, userID string) ([]*models.Expenditure, error) {
	query := `
		SELECT id, user_id, category, name_of_item, estimated_amount, created_at, modified_at
		FROM expenditures
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenditures: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var exps []*models.Expenditure

	for rows.Next() {
		exp := &models.Expenditure{}
		if err := rows.Scan(
			&exp.ID,
			&exp.UserID,
			&exp.Category,
			&exp.NameOfItem,
			&exp.EstimatedAmount,
			&exp.CreatedAt,
			&exp.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expenditure: %w", err)
		}
		exps = append(exps, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exps, nil
}

// UpdateExpenditure overwrites the mutable fields of a record
func (s *Storage) UpdateExpenditure(ctx context.Context, exp *models.Expenditure) error {
	query := `
		UPDATE expenditures
		SET category = ?, name_of_item = ?, estimated_amount = ?, modified_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		exp.Category,
		exp.NameOfItem,
		exp.EstimatedAmount,
		exp.ModifiedAt,
		exp.ID,
		exp.UserID,
	)

	if err != nil {
		return fmt.Errorf("failed to update expenditure: %w", err)
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

// DeleteExpenditure removes a record
func (s *Storage) DeleteExpenditure(ctx context.Context, userID, id string) error {
	query := `DELETE FROM expenditures WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
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
