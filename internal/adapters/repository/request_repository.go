package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type BloodRequestRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ ports.BloodRequestRepository = (*BloodRequestRepository)(nil)

func NewBloodRequestRepository(db *sql.DB, logger *zap.Logger) *BloodRequestRepository {
	return &BloodRequestRepository{db: db, logger: logger}
}

func (r *BloodRequestRepository) Create(ctx context.Context, req domain.BloodRequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blood_requests (id, user_id, hospital, blood_type, units, urgency, status, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID,
		req.UserID,
		req.Hospital,
		req.BloodType,
		req.Units,
		req.Urgency,
		req.Status,
		req.Notes,
		req.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert blood request", zap.String("user_id", req.UserID), zap.Error(err))
	}
	return err
}

const requestSelect = `
	SELECT r.id, r.user_id, COALESCE(u.name, 'Unknown User'), r.hospital,
	       r.blood_type, r.units, r.urgency, r.status, r.notes, r.created_at
	FROM blood_requests r
	LEFT JOIN users u ON u.id = r.user_id`

// List returns requests in stable insertion order so positional recency
// derivations hold. Filters are optional and combined with AND.
func (r *BloodRequestRepository) List(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
	query := requestSelect + " WHERE 1=1"
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += " AND r.status = $" + strconv.Itoa(len(args))
	}
	if filter.BloodGroup != "" {
		args = append(args, filter.BloodGroup)
		query += " AND r.blood_type = $" + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (u.name ILIKE $" + n + " OR r.hospital ILIKE $" + n + ")"
	}
	query += " ORDER BY r.created_at, r.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *BloodRequestRepository) ListByUser(ctx context.Context, userID string) ([]domain.BloodRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		requestSelect+" WHERE r.user_id = $1 ORDER BY r.created_at, r.id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *BloodRequestRepository) Get(ctx context.Context, id string) (*domain.BloodRequest, error) {
	row := r.db.QueryRowContext(ctx, requestSelect+" WHERE r.id = $1", id)

	var req domain.BloodRequest
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.UserName,
		&req.Hospital,
		&req.BloodType,
		&req.Units,
		&req.Urgency,
		&req.Status,
		&req.Notes,
		&req.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus moves a pending request into a terminal state and writes
// the outbox event in the same transaction. The WHERE clause on the
// current status makes concurrent transitions race-safe: the loser
// matches zero rows and the caller reports the conflict.
func (r *BloodRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, outboxPayload []byte) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE blood_requests SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status = $3`,
		id, status, domain.RequestPending)
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

	if err := insertOutboxEvent(ctx, tx, "blood_request.status_changed", outboxPayload); err != nil {
		r.logger.Error("failed to write outbox event", zap.String("request_id", id), zap.Error(err))
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func scanRequests(rows *sql.Rows) ([]domain.BloodRequest, error) {
	requests := []domain.BloodRequest{}
	for rows.Next() {
		var req domain.BloodRequest
		if err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.UserName,
			&req.Hospital,
			&req.BloodType,
			&req.Units,
			&req.Urgency,
			&req.Status,
			&req.Notes,
			&req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
