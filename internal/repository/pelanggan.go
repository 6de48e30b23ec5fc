package repository

import (
	"context"
	"fmt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

var (
	ErrPelangganEmailExists = dao.ErrPelangganEmailExists
	ErrPelangganNotFound    = dao.ErrPelangganNotFound
	ErrInsufficientSaldo    = dao.ErrInsufficientSaldo
)

type PelangganDAO interface {
	Insert(ctx context.Context, pelanggan dao.Pelanggan) (dao.Pelanggan, error)
	FindByID(ctx context.Context, id uint) (dao.Pelanggan, error)
	FindByEmail(ctx context.Context, email string) (dao.Pelanggan, error)
	FindAll(ctx context.Context) ([]dao.Pelanggan, error)
	Update(ctx context.Context, id uint, name, email string) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, id uint) error
	DebitSaldo(ctx context.Context, id uint, amount int) error
	CreditSaldo(ctx context.Context, id uint, amount int) error
}

type PelangganRepository struct {
	dao PelangganDAO
}

func NewPelangganRepository(dao PelangganDAO) *PelangganRepository {
	return &PelangganRepository{
		dao: dao,
	}
}

func (r *PelangganRepository) Create(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error) {
	created, err := r.dao.Insert(ctx, dao.Pelanggan{
		Name:     pelanggan.Name,
		Email:    pelanggan.Email,
		Password: pelanggan.Password,
		Saldo:    pelanggan.Saldo,
	})
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PelangganRepository) FindByID(ctx context.Context, id uint) (domain.Pelanggan, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PelangganRepository) FindByEmail(ctx context.Context, email string) (domain.Pelanggan, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Pelanggan{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PelangganRepository) FindAll(ctx context.Context) ([]domain.Pelanggan, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Pelanggan, len(found))
	for i, p := range found {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *PelangganRepository) Update(ctx context.Context, id uint, name, email string) error {
	if err := r.dao.Update(ctx, id, name, email); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *PelangganRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if err := r.dao.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *PelangganRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PelangganRepository) DebitSaldo(ctx context.Context, id uint, amount int) error {
	if err := r.dao.DebitSaldo(ctx, id, amount); err != nil {
		return fmt.Errorf("r.dao.DebitSaldo -> %w", err)
	}

	return nil
}

func (r *PelangganRepository) CreditSaldo(ctx context.Context, id uint, amount int) error {
	if err := r.dao.CreditSaldo(ctx, id, amount); err != nil {
		return fmt.Errorf("r.dao.CreditSaldo -> %w", err)
	}

	return nil
}

func (r *PelangganRepository) daoToDomain(p dao.Pelanggan) domain.Pelanggan {
	return domain.Pelanggan{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Password:  p.Password,
		Saldo:     p.Saldo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
