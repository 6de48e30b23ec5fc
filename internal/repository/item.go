package repository

import (
	"context"
	"fmt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

var (
	ErrItemNotFound      = dao.ErrItemNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
	FindByEmail(ctx context.Context, email string) ([]dao.Item, error)
	FindPage(ctx context.Context, offset, limit int, sortField, sortOrder, searchField, searchKey string) ([]dao.Item, error)
	Count(ctx context.Context, searchField, searchKey string) (int64, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	Delete(ctx context.Context, id uint) error
	ReduceStock(ctx context.Context, id uint, quantity int) error
	AddStock(ctx context.Context, id uint, quantity int) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ItemRepository) FindByEmail(ctx context.Context, email string) ([]domain.Item, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ItemRepository) FindPage(ctx context.Context, offset, limit int, sortField, sortOrder, searchField, searchKey string) ([]domain.Item, error) {
	found, err := r.dao.FindPage(ctx, offset, limit, sortField, sortOrder, searchField, searchKey)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ItemRepository) Count(ctx context.Context, searchField, searchKey string) (int64, error) {
	count, err := r.dao.Count(ctx, searchField, searchKey)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) ReduceStock(ctx context.Context, id uint, quantity int) error {
	if err := r.dao.ReduceStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("r.dao.ReduceStock -> %w", err)
	}

	return nil
}

func (r *ItemRepository) AddStock(ctx context.Context, id uint, quantity int) error {
	if err := r.dao.AddStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("r.dao.AddStock -> %w", err)
	}

	return nil
}

func (r *ItemRepository) domainToDao(i domain.Item) dao.Item {
	return dao.Item{
		ID:            i.ID,
		NamaBarang:    i.NamaBarang,
		JenisBarang:   i.JenisBarang,
		StokBarang:    i.StokBarang,
		HargaBarang:   i.HargaBarang,
		Email:         i.Email,
		LokasiPenjual: i.LokasiPenjual,
	}
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:            i.ID,
		NamaBarang:    i.NamaBarang,
		JenisBarang:   i.JenisBarang,
		StokBarang:    i.StokBarang,
		HargaBarang:   i.HargaBarang,
		Email:         i.Email,
		LokasiPenjual: i.LokasiPenjual,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (r *ItemRepository) daosToDomain(items []dao.Item) []domain.Item {
	result := make([]domain.Item, len(items))
	for i, item := range items {
		result[i] = r.daoToDomain(item)
	}

	return result
}
