package journal

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/dbx"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/pgutil"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	query :=
		`INSERT INTO journal_entries (id, user_id, date, scope, text)
		 VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.Date, e.Scope, e.Text); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	query :=
		`SELECT id, user_id, date, scope, text FROM journal_entries
		 WHERE user_id = $1
		 ORDER BY created_at, id`

	return r.query(ctx, query, userID)
}

func (r *PostgresRepository) Find(ctx context.Context, userID, id string) ([]*models.JournalEntry, error) {
	query :=
		`SELECT id, user_id, date, scope, text FROM journal_entries
		 WHERE id = $1 AND user_id = $2`

	return r.query(ctx, query, id, userID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.JournalEntry, 0)
	for rows.Next() {
		e := &models.JournalEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Scope, &e.Text); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch *models.JournalPatch) (bool, error) {
	query, args := pgutil.UpdateOwned("journal_entries", patch.Columns(), userID, id)
	if query == "" {
		return false, nil
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return pgutil.Affected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return pgutil.Affected(res)
}
