package crops

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/dbx"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/pgutil"
)

const selectColumns = `id, user_id, name, variety, plant_date, germination_days, harvest_days,
		 planting_depth, row_spacing, seed_spacing`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Crop) error {
	query :=
		`INSERT INTO crops (id, user_id, name, variety, plant_date, germination_days, harvest_days,
		 planting_depth, row_spacing, seed_spacing)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Variety, c.PlantDate, c.GerminationDays, c.HarvestDays,
		c.PlantingDepth, c.RowSpacing, c.SeedSpacing)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Crop, error) {
	query := `SELECT ` + selectColumns + `
		 FROM crops WHERE user_id = $1
		 ORDER BY created_at, id`

	return r.query(ctx, query, userID)
}

func (r *PostgresRepository) Find(ctx context.Context, userID, id string) ([]*models.Crop, error) {
	query := `SELECT ` + selectColumns + `
		 FROM crops WHERE id = $1 AND user_id = $2`

	return r.query(ctx, query, id, userID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Crop, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Crop, 0)
	for rows.Next() {
		c := &models.Crop{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Variety, &c.PlantDate,
			&c.GerminationDays, &c.HarvestDays, &c.PlantingDepth, &c.RowSpacing, &c.SeedSpacing); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch *models.CropPatch) (bool, error) {
	query, args := pgutil.UpdateOwned("crops", patch.Columns(), userID, id)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM crops WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return pgutil.Affected(res)
}
