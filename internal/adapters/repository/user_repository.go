package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

const userColumns = `id, name, role, blood_group, mobile,
	COALESCE(email, ''), COALESCE(username, ''), COALESCE(hospital, ''),
	password, created_at`

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Role,
		&user.BloodGroup,
		&user.Mobile,
		&user.Email,
		&user.Username,
		&user.Hospital,
		&user.Password,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, role, blood_group, mobile, email, username, hospital, password, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)`,
		user.ID,
		user.Name,
		user.Role,
		user.BloodGroup,
		user.Mobile,
		user.Email,
		user.Username,
		user.Hospital,
		user.Password,
		user.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert user", zap.String("role", string(user.Role)), zap.Error(err))
	}
	return err
}
