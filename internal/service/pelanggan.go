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
	ErrPelangganEmailExists = repository.ErrPelangganEmailExists
	ErrPelangganNotFound    = repository.ErrPelangganNotFound
	ErrInsufficientSaldo    = repository.ErrInsufficientSaldo
	ErrInvalidAmount        = errors.New("invalid amount")
)

type PelangganRepository interface {
	Create(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error)
	FindByID(ctx context.Context, id uint) (domain.Pelanggan, error)
	FindByEmail(ctx context.Context, email string) (domain.Pelanggan, error)
	FindAll(ctx context.Context) ([]domain.Pelanggan, error)
	Update(ctx context.Context, id uint, name, email string) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, id uint) error
	DebitSaldo(ctx context.Context, id uint, amount int) error
	CreditSaldo(ctx context.Context, id uint, amount int) error
}

type PelangganService struct {
	repo PelangganRepository
}

func NewPelangganService(repo PelangganRepository) *PelangganService {
	return &PelangganService{
		repo: repo,
	}
}

func (s *PelangganService) GetPelanggan(ctx context.Context, id uint) (domain.Pelanggan, error) {
	pelanggan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return pelanggan, nil
}

func (s *PelangganService) ListPelanggan(ctx context.Context) ([]domain.Pelanggan, error) {
	pelanggans, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return pelanggans, nil
}

func (s *PelangganService) CreatePelanggan(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pelanggan.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	pelanggan.Password = string(hash)

	created, err := s.repo.Create(ctx, pelanggan)
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PelangganService) UpdatePelanggan(ctx context.Context, id uint, name, email string) error {
	if err := s.repo.Update(ctx, id, name, email); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *PelangganService) DeletePelanggan(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PelangganService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	pelanggan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(pelanggan.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	if err = s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("s.repo.UpdatePassword -> %w", err)
	}

	return nil
}

// TopUpSaldo credits a client-supplied amount. The amount is untrusted
// input and must be at least 1.
func (s *PelangganService) TopUpSaldo(ctx context.Context, id uint, amount int) error {
	if amount < 1 {
		return ErrInvalidAmount
	}

	if err := s.repo.CreditSaldo(ctx, id, amount); err != nil {
		return fmt.Errorf("s.repo.CreditSaldo -> %w", err)
	}

	return nil
}

// DebitSaldo subtracts a computed amount from the saldo. Amounts reach
// here from the pricing lookup, never raw from the client.
func (s *PelangganService) DebitSaldo(ctx context.Context, id uint, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	if err := s.repo.DebitSaldo(ctx, id, amount); err != nil {
		return fmt.Errorf("s.repo.DebitSaldo -> %w", err)
	}

	return nil
}

func (s *PelangganService) CreditSaldo(ctx context.Context, id uint, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	if err := s.repo.CreditSaldo(ctx, id, amount); err != nil {
		return fmt.Errorf("s.repo.CreditSaldo -> %w", err)
	}

	return nil
}
