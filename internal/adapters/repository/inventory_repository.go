package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type InventoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository(db *sql.DB, logger *zap.Logger) *InventoryRepository {
	return &InventoryRepository{db: db, logger: logger}
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT hospital, blood_type, units_available, updated_at
		 FROM inventory
		 ORDER BY hospital, blood_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.InventoryRecord{}
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.Hospital, &rec.BloodType, &rec.UnitsAvailable, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert relies on the (hospital, blood_type) primary key: an existing
// pair gets its units and timestamp replaced, so repeated writes stay
// idempotent and never produce duplicate rows.
func (r *InventoryRepository) Upsert(ctx context.Context, rec domain.InventoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (hospital, blood_type, units_available, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (hospital, blood_type)
		 DO UPDATE SET units_available = EXCLUDED.units_available, updated_at = EXCLUDED.updated_at`,
		rec.Hospital,
		rec.BloodType,
		rec.UnitsAvailable,
		rec.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert inventory record",
			zap.String("hospital", rec.Hospital),
			zap.String("blood_type", rec.BloodType),
			zap.Error(err))
	}
	return err
}

// Seed inserts zero-unit records for every hospital/blood-group pair.
// Existing pairs keep their counts; re-running the seed is harmless.
func (r *InventoryRepository) Seed(ctx context.Context, hospitals, bloodGroups []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO inventory (hospital, blood_type, units_available, updated_at)
		 VALUES ($1, $2, 0, NOW())
		 ON CONFLICT (hospital, blood_type) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, hospital := range hospitals {
		for _, bg := range bloodGroups {
			if _, err := stmt.ExecContext(ctx, hospital, bg); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
