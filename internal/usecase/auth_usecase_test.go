package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail   map[string]user.User
	byID      map[uuid.UUID]user.User
	createErr error
}

func (m *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return user.User{}, repository.ErrUserNotFound
}
func (m *stubUserRepo) FindByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, repository.ErrUserNotFound
}
func (m *stubUserRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (m *stubUserRepo) CreateWithProfile(_ context.Context, u user.User) (user.User, error) {
	if m.createErr != nil {
		return user.User{}, m.createErr
	}
	return u, nil
}
func (m *stubUserRepo) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (m *stubUserRepo) UpdateStatus(context.Context, uuid.UUID, string) error   { return nil }
func (m *stubUserRepo) Delete(context.Context, uuid.UUID) error                 { return nil }
func (m *stubUserRepo) List(context.Context, string, string) ([]user.User, error) {
	return nil, nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	uc := NewAuthUsecase(&stubUserRepo{}, stubSeekerRepo{}, testJWT())

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Password: "supersecret",
		Role:     user.RoleAdmin,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	uc := NewAuthUsecase(&stubUserRepo{}, stubSeekerRepo{}, testJWT())

	usr, pair, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Ana@Example.com",
		Password: "supersecret",
		Role:     user.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %q", usr.Email)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens issued")
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &stubUserRepo{createErr: repository.ErrEmailTaken}
	uc := NewAuthUsecase(repo, stubSeekerRepo{}, testJWT())

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Password: "supersecret",
		Role:     user.RoleRecruiter,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestForgotPassword_NeverRevealsAccountExistence(t *testing.T) {
	uc := NewAuthUsecase(&stubUserRepo{}, stubSeekerRepo{}, testJWT())

	if err := uc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("unknown email must still succeed, got %v", err)
	}
	if err := uc.ForgotPassword(context.Background(), "not-an-email"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed email, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]user.User{
		"a@example.com": {ID: uuid.New(), Email: "a@example.com", PasswordHash: hashOf(t, "correct"), Status: user.StatusApproved},
	}}
	uc := NewAuthUsecase(repo, stubSeekerRepo{}, testJWT())

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_SuspendedAccountBlocked(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]user.User{
		"a@example.com": {ID: uuid.New(), Email: "a@example.com", PasswordHash: hashOf(t, "supersecret"), Status: user.StatusSuspended},
	}}
	uc := NewAuthUsecase(repo, stubSeekerRepo{}, testJWT())

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	jwtSvc := testJWT()
	usr := user.User{ID: uuid.New(), Email: "a@example.com", Role: user.RoleJobSeeker, Status: user.StatusApproved}
	repo := &stubUserRepo{byID: map[uuid.UUID]user.User{usr.ID: usr}}
	uc := NewAuthUsecase(repo, stubSeekerRepo{}, jwtSvc)

	access, err := jwtSvc.GenerateAccessToken(jwt.Identity{UserID: usr.ID, Email: usr.Email})
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	jwtSvc := testJWT()
	usr := user.User{ID: uuid.New(), Email: "a@example.com", Role: user.RoleJobSeeker, Status: user.StatusApproved}
	repo := &stubUserRepo{byID: map[uuid.UUID]user.User{usr.ID: usr}}
	uc := NewAuthUsecase(repo, stubSeekerRepo{}, jwtSvc)

	refresh, err := jwtSvc.GenerateRefreshToken(usr.ID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	pair, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected fresh token pair")
	}
}
