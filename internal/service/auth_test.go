package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

type mockAuthUserRepo struct {
	users map[string]domain.User
}

func (m *mockAuthUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, dao.ErrUserNotFound
	}

	return user, nil
}

type mockTracker struct {
	counts map[string]int
}

func newMockTracker() *mockTracker {
	return &mockTracker{counts: make(map[string]int)}
}

func (m *mockTracker) Hit(ctx context.Context, email string) (int, error) {
	m.counts[email]++

	return m.counts[email], nil
}

func (m *mockTracker) Count(ctx context.Context, email string) (int, error) {
	return m.counts[email], nil
}

func (m *mockTracker) Reset(ctx context.Context, email string) error {
	delete(m.counts, email)

	return nil
}

func newAuthFixture(t *testing.T) (*mockTracker, *AuthService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword: %v", err)
	}

	repo := &mockAuthUserRepo{users: map[string]domain.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Password: string(hash)},
	}}
	tracker := newMockTracker()

	return tracker, NewAuthService(repo, tracker)
}

func TestLogin_Success(t *testing.T) {
	_, svc := newAuthFixture(t)

	user, err := svc.Login(context.Background(), "admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected user ID 1, got %d", user.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	tracker, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "admin@example.com", "nope")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got: %v", err)
	}
	if tracker.counts["admin@example.com"] != 1 {
		t.Errorf("expected 1 recorded failure, got %d", tracker.counts["admin@example.com"])
	}
}

func TestLogin_UnknownEmailCountsAsFailure(t *testing.T) {
	tracker, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
	if tracker.counts["ghost@example.com"] != 1 {
		t.Errorf("expected 1 recorded failure, got %d", tracker.counts["ghost@example.com"])
	}
}

func TestLogin_LockedOutAfterLimit(t *testing.T) {
	_, svc := newAuthFixture(t)

	for i := 0; i < loginAttemptLimit; i++ {
		if _, err := svc.Login(context.Background(), "admin@example.com", "nope"); !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("attempt %d: expected ErrWrongPassword, got: %v", i, err)
		}
	}

	// Even the right password is refused while locked out.
	_, err := svc.Login(context.Background(), "admin@example.com", "secret123")
	if !errors.Is(err, ErrTooManyLoginAttempts) {
		t.Errorf("expected ErrTooManyLoginAttempts, got: %v", err)
	}
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	tracker, svc := newAuthFixture(t)

	for i := 0; i < loginAttemptLimit-1; i++ {
		_, _ = svc.Login(context.Background(), "admin@example.com", "nope")
	}

	if _, err := svc.Login(context.Background(), "admin@example.com", "secret123"); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if tracker.counts["admin@example.com"] != 0 {
		t.Errorf("expected counter reset, got %d", tracker.counts["admin@example.com"])
	}
}
