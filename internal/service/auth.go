package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository"
)

var (
	ErrWrongPassword        = errors.New("wrong password")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
)

// loginAttemptLimit failed logins within the tracker window lock the
// account out until the window expires.
const loginAttemptLimit = 5

type AuthUserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type LoginAttemptTracker interface {
	Hit(ctx context.Context, email string) (int, error)
	Count(ctx context.Context, email string) (int, error)
	Reset(ctx context.Context, email string) error
}

type AuthService struct {
	repo     AuthUserRepository
	attempts LoginAttemptTracker
}

func NewAuthService(repo AuthUserRepository, attempts LoginAttemptTracker) *AuthService {
	return &AuthService{
		repo:     repo,
		attempts: attempts,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	count, err := s.attempts.Count(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.attempts.Count -> %w", err)
	}
	if count >= loginAttemptLimit {
		return domain.User{}, ErrTooManyLoginAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.recordFailure(ctx, email)

			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.recordFailure(ctx, email)

		return domain.User{}, ErrWrongPassword
	}

	if err = s.attempts.Reset(ctx, email); err != nil {
		return domain.User{}, fmt.Errorf("s.attempts.Reset -> %w", err)
	}

	return user, nil
}

// recordFailure bumps the counter; a tracker error must not mask the
// credential error, so it is dropped here.
func (s *AuthService) recordFailure(ctx context.Context, email string) {
	_, _ = s.attempts.Hit(ctx, email)
}
