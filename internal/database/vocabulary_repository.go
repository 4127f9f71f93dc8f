package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SkillRow is a row of the skill_vocabulary table.
type SkillRow struct {
	ID        int       `db:"id"`
	Token     string    `db:"token"`
	Category  string    `db:"category"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// VocabularyRepository handles database operations for the skill vocabulary.
type VocabularyRepository struct {
	db *sqlx.DB
}

// NewVocabularyRepository creates a new vocabulary repository.
func NewVocabularyRepository(db *sqlx.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// Create inserts a new skill token.
func (r *VocabularyRepository) Create(ctx context.Context, row *SkillRow) error {
	query := `
		INSERT INTO skill_vocabulary (token, category, enabled)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, row.Token, row.Category, row.Enabled).
		Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

// List retrieves skill tokens, optionally filtered by enabled state.
func (r *VocabularyRepository) List(ctx context.Context, enabled *bool) ([]*SkillRow, error) {
	query := `
		SELECT id, token, category, enabled, created_at, updated_at
		FROM skill_vocabulary
	`
	var args []any
	if enabled != nil {
		query += " WHERE enabled = $1"
		args = append(args, *enabled)
	}
	query += " ORDER BY category ASC, token ASC"

	rows := []*SkillRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	return rows, nil
}

// SetEnabled flips one token's enabled flag.
func (r *VocabularyRepository) SetEnabled(ctx context.Context, id int, enabled bool) error {
	query := `
		UPDATE skill_vocabulary
		SET enabled = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("skill not found: %d", id)
	}

	return nil
}

// Delete removes a skill token.
func (r *VocabularyRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM skill_vocabulary WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("skill not found: %d", id)
	}

	return nil
}

// GetByID retrieves one skill token.
func (r *VocabularyRepository) GetByID(ctx context.Context, id int) (*SkillRow, error) {
	var row SkillRow
	query := `
		SELECT id, token, category, enabled, created_at, updated_at
		FROM skill_vocabulary
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("skill not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return &row, nil
}
