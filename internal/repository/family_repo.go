package repository

import (
	"context"
	"database/sql"
	"fmt"

	"starquest/internal/database"
	"starquest/internal/models"
)

// FamilyRepository handles read access to family and child rows
type FamilyRepository struct {
	db *database.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// FamilyByID retrieves a family by ID. Returns (nil, nil) when absent.
func (r *FamilyRepository) FamilyByID(ctx context.Context, familyID int64) (*models.Family, error) {
	query := "SELECT id, name, email, locale, created_at, updated_at FROM families WHERE id = ?"
	family := &models.Family{}
	err := r.db.QueryRowContext(ctx, query, familyID).Scan(
		&family.ID,
		&family.Name,
		&family.Email,
		&family.Locale,
		&family.CreatedAt,
		&family.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}

	return family, nil
}

// FamilyChildren retrieves all children of a family, oldest profile first
func (r *FamilyRepository) FamilyChildren(ctx context.Context, familyID int64) ([]models.Child, error) {
	query := `
		SELECT id, family_id, name, name_zh, balance, credit_limit, created_at, updated_at
		FROM children
		WHERE family_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	defer rows.Close()

	var children []models.Child
	for rows.Next() {
		var child models.Child
		if err := rows.Scan(
			&child.ID, &child.FamilyID, &child.Name, &child.NameZh,
			&child.Balance, &child.CreditLimit, &child.CreatedAt, &child.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		children = append(children, child)
	}

	return children, rows.Err()
}
