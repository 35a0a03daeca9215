package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

const minPasswordLength = 6

type RegistrationService struct {
	userRepo ports.UserRepository
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(userRepo ports.UserRepository) *RegistrationService {
	return &RegistrationService{userRepo: userRepo}
}

// RegisterUser creates a role=user account identified by email.
func (s *RegistrationService) RegisterUser(
	ctx context.Context,
	name, email, mobile, bloodGroup, password string,
) (string, error) {
	if name == "" || email == "" || mobile == "" || bloodGroup == "" {
		return "", domain.Invalid("all fields are required")
	}
	if len(password) < minPasswordLength {
		return "", domain.Invalid("password must be at least 6 characters long")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "Registration failed", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "Registration failed", err
	}

	user := domain.User{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       domain.RoleUser,
		BloodGroup: bloodGroup,
		Mobile:     mobile,
		Email:      email,
		Password:   string(hash),
		CreatedAt:  time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "Registration failed", err
	}

	return "Registration successful! Please login.", nil
}

// RegisterAdmin creates a role=admin account identified by username and
// bound to a hospital.
func (s *RegistrationService) RegisterAdmin(
	ctx context.Context,
	name, username, hospital, mobile, bloodGroup, password string,
) (string, error) {
	if name == "" || username == "" || hospital == "" || mobile == "" || bloodGroup == "" {
		return "", domain.Invalid("all fields are required")
	}
	if len(password) < minPasswordLength {
		return "", domain.Invalid("password must be at least 6 characters long")
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return "", domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "Registration failed", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "Registration failed", err
	}

	user := domain.User{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       domain.RoleAdmin,
		BloodGroup: bloodGroup,
		Mobile:     mobile,
		Username:   username,
		Hospital:   hospital,
		Password:   string(hash),
		CreatedAt:  time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "Registration failed", err
	}

	return "Registration successful! Please login.", nil
}
