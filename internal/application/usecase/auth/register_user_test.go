package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type stubUserRepository struct {
	existing map[string]bool
	created  *entity.User
}

func (s *stubUserRepository) Create(ctx context.Context, user *entity.User) error {
	s.created = user
	return nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existing[email], nil
}

type stubPasswordService struct {
	strengthErr error
}

func (s *stubPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *stubPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (s *stubPasswordService) ValidatePasswordStrength(password string) error {
	return s.strengthErr
}

type stubTokenService struct {
	invalidated []string
}

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *stubTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *stubTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	return nil
}

func (s *stubTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func newRegisterFixture() (*RegisterUserUseCase, *stubUserRepository) {
	userRepo := &stubUserRepository{existing: make(map[string]bool)}
	return NewRegisterUserUseCase(userRepo, &stubPasswordService{}, &stubTokenService{}), userRepo
}

func TestRegisterUserCreatesViewer(t *testing.T) {
	uc, userRepo := newRegisterFixture()

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "sup3rSecret!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if userRepo.created == nil {
		t.Fatal("expected user to be persisted")
	}
	if userRepo.created.Role != entity.RoleViewer {
		t.Errorf("expected new user role %q, got %q", entity.RoleViewer, userRepo.created.Role)
	}
	if userRepo.created.PasswordHash == "sup3rSecret!" {
		t.Error("password must not be stored in plain text")
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected a token pair in the output")
	}
}

func TestRegisterUserRejectsInvalidEmail(t *testing.T) {
	uc, _ := newRegisterFixture()

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "not-an-email",
		Name:     "Alice",
		Password: "sup3rSecret!",
	})

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeInvalidEmail {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEmail, authErr.Code)
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	uc, userRepo := newRegisterFixture()
	userRepo.existing["alice@example.com"] = true

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "sup3rSecret!",
	})

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeEmailExists {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, authErr.Code)
	}
}

func TestRegisterUserRejectsWeakPassword(t *testing.T) {
	userRepo := &stubUserRepository{existing: make(map[string]bool)}
	passwordService := &stubPasswordService{strengthErr: errors.New("too weak")}
	uc := NewRegisterUserUseCase(userRepo, passwordService, &stubTokenService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw",
	})

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeWeakPassword {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
	}
}
