package repository

import (
	"context"
	"fmt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

var (
	ErrPenjualEmailExists = dao.ErrPenjualEmailExists
	ErrPenjualNotFound    = dao.ErrPenjualNotFound
)

type PenjualDAO interface {
	Insert(ctx context.Context, penjual dao.Penjual) (dao.Penjual, error)
	FindByID(ctx context.Context, id uint) (dao.Penjual, error)
	FindByEmail(ctx context.Context, email string) (dao.Penjual, error)
	FindAll(ctx context.Context) ([]dao.Penjual, error)
	Update(ctx context.Context, id uint, name, email string) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, id uint) error
}

type PenjualRepository struct {
	dao PenjualDAO
}

func NewPenjualRepository(dao PenjualDAO) *PenjualRepository {
	return &PenjualRepository{
		dao: dao,
	}
}

func (r *PenjualRepository) Create(ctx context.Context, penjual domain.Penjual) (domain.Penjual, error) {
	created, err := r.dao.Insert(ctx, dao.Penjual{
		Name:     penjual.Name,
		Email:    penjual.Email,
		Password: penjual.Password,
		Income:   penjual.Income,
	})
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PenjualRepository) FindByID(ctx context.Context, id uint) (domain.Penjual, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PenjualRepository) FindByEmail(ctx context.Context, email string) (domain.Penjual, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Penjual{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PenjualRepository) FindAll(ctx context.Context) ([]domain.Penjual, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Penjual, len(found))
	for i, p := range found {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *PenjualRepository) Update(ctx context.Context, id uint, name, email string) error {
	if err := r.dao.Update(ctx, id, name, email); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *PenjualRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if err := r.dao.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *PenjualRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PenjualRepository) daoToDomain(p dao.Penjual) domain.Penjual {
	return domain.Penjual{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Password:  p.Password,
		Income:    p.Income,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
