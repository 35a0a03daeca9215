package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type DonationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ ports.DonationRepository = (*DonationRepository)(nil)

func NewDonationRepository(db *sql.DB, logger *zap.Logger) *DonationRepository {
	return &DonationRepository{db: db, logger: logger}
}

func (r *DonationRepository) Create(ctx context.Context, don domain.Donation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO donations (id, donor_id, donor_name, donation_date, donation_time,
		                        blood_type, contact_number, hospital, notes, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		don.ID,
		don.DonorID,
		don.DonorName,
		don.DonationDate,
		don.DonationTime,
		don.BloodType,
		don.ContactNumber,
		don.Hospital,
		don.Notes,
		don.Status,
		don.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert donation", zap.String("donor_id", don.DonorID), zap.Error(err))
	}
	return err
}

const donationSelect = `
	SELECT id, donor_id, donor_name, donation_date, donation_time,
	       blood_type, contact_number, hospital, notes, status, created_at
	FROM donations`

func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, donationSelect+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		donationSelect+" WHERE donor_id = $1 ORDER BY created_at, id", donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

func (r *DonationRepository) Get(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.db.QueryRowContext(ctx, donationSelect+" WHERE id = $1", id)

	var don domain.Donation
	err := row.Scan(
		&don.ID,
		&don.DonorID,
		&don.DonorName,
		&don.DonationDate,
		&don.DonationTime,
		&don.BloodType,
		&don.ContactNumber,
		&don.Hospital,
		&don.Notes,
		&don.Status,
		&don.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &don, nil
}

// UpdateStatus mirrors the blood request transition: only scheduled rows
// match, and the outbox write shares the transaction.
func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus, outboxPayload []byte) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE donations SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status = $3`,
		id, status, domain.DonationScheduled)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := insertOutboxEvent(ctx, tx, "donation.status_changed", outboxPayload); err != nil {
		r.logger.Error("failed to write outbox event", zap.String("donation_id", id), zap.Error(err))
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func scanDonations(rows *sql.Rows) ([]domain.Donation, error) {
	donations := []domain.Donation{}
	for rows.Next() {
		var don domain.Donation
		if err := rows.Scan(
			&don.ID,
			&don.DonorID,
			&don.DonorName,
			&don.DonationDate,
			&don.DonationTime,
			&don.BloodType,
			&don.ContactNumber,
			&don.Hospital,
			&don.Notes,
			&don.Status,
			&don.CreatedAt,
		); err != nil {
			return nil, err
		}
		donations = append(donations, don)
	}
	return donations, rows.Err()
}
