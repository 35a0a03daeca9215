package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
)

func TestRegisterUser_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewRegistrationService(repo)

	msg, err := service.RegisterUser(context.Background(), "Alice", "a@x.com", "5551234", "O-", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Registration successful! Please login." {
		t.Errorf("unexpected message: %s", msg)
	}

	if len(repo.CreateCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.CreateCalls))
	}
	created := repo.CreateCalls[0]
	if created.Role != domain.RoleUser {
		t.Errorf("expected role user, got %s", created.Role)
	}
	if created.Email != "a@x.com" || created.Username != "" || created.Hospital != "" {
		t.Errorf("user account must carry email only: %+v", created)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")); err != nil {
		t.Error("stored password is not a bcrypt hash of the input")
	}
}

func TestRegisterAdmin_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewRegistrationService(repo)

	_, err := service.RegisterAdmin(context.Background(), "Bob", "cityadmin", "City General Hospital", "5551234", "A+", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created := repo.CreateCalls[0]
	if created.Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %s", created.Role)
	}
	if created.Username != "cityadmin" || created.Hospital != "City General Hospital" {
		t.Errorf("admin account must carry username and hospital: %+v", created)
	}
	if created.Email != "" {
		t.Errorf("admin account must not carry email: %+v", created)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	repo.SeedUser(&domain.User{ID: "user-1", Email: "a@x.com"})
	service := NewRegistrationService(repo)

	_, err := service.RegisterUser(context.Background(), "Alice", "a@x.com", "5551234", "O-", "secret123")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.CreateCalls) != 0 {
		t.Error("Create must not be called for duplicate email")
	}
}

func TestRegisterAdmin_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepository()
	repo.SeedUser(&domain.User{ID: "admin-1", Username: "cityadmin"})
	service := NewRegistrationService(repo)

	_, err := service.RegisterAdmin(context.Background(), "Bob", "cityadmin", "Hospital", "5551234", "A+", "secret123")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	service := NewRegistrationService(newMockUserRepository())

	_, err := service.RegisterUser(context.Background(), "Alice", "a@x.com", "5551234", "O-", "12345")
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	service := NewRegistrationService(newMockUserRepository())

	if _, err := service.RegisterUser(context.Background(), "", "a@x.com", "5551234", "O-", "secret123"); !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}
	if _, err := service.RegisterAdmin(context.Background(), "Bob", "cityadmin", "", "5551234", "A+", "secret123"); !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing hospital, got %v", err)
	}
}
