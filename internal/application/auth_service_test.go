package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/pkg/helpers"
)

type failingUserRepo struct {
	*memUserRepo
	err error
}

func (r *failingUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, r.err
}

func newAuthEnv(t *testing.T) (*memStore, *AuthService) {
	t.Helper()
	store := newMemStore()
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store.nextUserID = 1
	store.users[1] = entity.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Roles:        []entity.Role{{ID: 3, Name: entity.RoleEmployee}},
	}
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return store, NewAuthService(&memUserRepo{store: store}, jwt, nil, nil)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		store, svc := newAuthEnv(t)

		res, pair, err := svc.Login(ctx, "  Alice@Example.COM ", "password123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if res.UserID != 1 || res.Username != "alice" {
			t.Errorf("result = %+v", res)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Error("token pair incomplete")
		}
		if store.users[1].LastLogin == nil {
			t.Error("last login not recorded")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, svc := newAuthEnv(t)
		_, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc := newAuthEnv(t)
		_, _, err := svc.Login(ctx, "alice@example.com", "wrongpassword")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		store, svc := newAuthEnv(t)
		storeErr := errors.New("connection refused")
		svc.Users = &failingUserRepo{memUserRepo: &memUserRepo{store: store}, err: storeErr}

		_, _, err := svc.Login(ctx, "alice@example.com", "password123")
		if errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("infrastructure failure reported as invalid credentials: %v", err)
		}
		if !errors.Is(err, storeErr) {
			t.Fatalf("err = %v, want the store error to propagate", err)
		}
	})
}
