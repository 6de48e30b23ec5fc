package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository"
)

var (
	ErrPenjualEmailExists = repository.ErrPenjualEmailExists
	ErrPenjualNotFound    = repository.ErrPenjualNotFound
)

type PenjualRepository interface {
	Create(ctx context.Context, penjual domain.Penjual) (domain.Penjual, error)
	FindByID(ctx context.Context, id uint) (domain.Penjual, error)
	FindByEmail(ctx context.Context, email string) (domain.Penjual, error)
	FindAll(ctx context.Context) ([]domain.Penjual, error)
	Update(ctx context.Context, id uint, name, email string) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, id uint) error
}

type PenjualService struct {
	repo PenjualRepository
}

func NewPenjualService(repo PenjualRepository) *PenjualService {
	return &PenjualService{
		repo: repo,
	}
}

func (s *PenjualService) GetPenjual(ctx context.Context, id uint) (domain.Penjual, error) {
	penjual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return penjual, nil
}

func (s *PenjualService) GetPenjualByEmail(ctx context.Context, email string) (domain.Penjual, error) {
	penjual, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return penjual, nil
}

func (s *PenjualService) ListPenjual(ctx context.Context) ([]domain.Penjual, error) {
	penjuals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return penjuals, nil
}

// CreatePenjual registers a seller. Income always starts at zero.
func (s *PenjualService) CreatePenjual(ctx context.Context, penjual domain.Penjual) (domain.Penjual, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(penjual.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	penjual.Password = string(hash)
	penjual.Income = 0

	created, err := s.repo.Create(ctx, penjual)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PenjualService) UpdatePenjual(ctx context.Context, id uint, name, email string) error {
	if err := s.repo.Update(ctx, id, name, email); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *PenjualService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	penjual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(penjual.Password), []byte(oldPassword)); err != nil {
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

func (s *PenjualService) DeletePenjual(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
