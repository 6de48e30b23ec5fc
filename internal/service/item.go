package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository"
)

var (
	ErrItemNotFound      = repository.ErrItemNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// itemSortFields and itemSearchFields are the columns the pagination
// endpoint may touch. Anything else falls back to the default.
var (
	itemSortFields = map[string]bool{
		"id":             true,
		"nama_barang":    true,
		"jenis_barang":   true,
		"stok_barang":    true,
		"harga_barang":   true,
		"lokasi_penjual": true,
	}
	itemSearchFields = map[string]bool{
		"nama_barang":    true,
		"jenis_barang":   true,
		"lokasi_penjual": true,
		"email":          true,
	}
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id uint) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Item, error)
	FindPage(ctx context.Context, offset, limit int, sortField, sortOrder, searchField, searchKey string) ([]domain.Item, error)
	Count(ctx context.Context, searchField, searchKey string) (int64, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id uint) error
	ReduceStock(ctx context.Context, id uint, quantity int) error
	AddStock(ctx context.Context, id uint, quantity int) error
}

type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

// ListItemsByEmail returns every listing owned by a penjual.
func (s *ItemService) ListItemsByEmail(ctx context.Context, email string) ([]domain.Item, error) {
	items, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return items, nil
}

// ReduceStock takes quantity units off an item's stock. The write is a
// guarded decrement at the store, so concurrent reductions settle to
// exactly the available stock and never below zero.
func (s *ItemService) ReduceStock(ctx context.Context, id uint, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	if err := s.repo.ReduceStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("s.repo.ReduceStock -> %w", err)
	}

	return nil
}

// AddStock restocks an item. No upper bound.
func (s *ItemService) AddStock(ctx context.Context, id uint, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	if err := s.repo.AddStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("s.repo.AddStock -> %w", err)
	}

	return nil
}

// Quote computes the total price of quantity units of an item.
func (s *ItemService) Quote(ctx context.Context, id uint, quantity int) (int, error) {
	if quantity < 0 {
		return 0, ErrInvalidQuantity
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item.HargaBarang * quantity, nil
}

// PaginateItems mirrors the pagination query contract:
// sort is "field:asc|desc", search is "field:key". Unknown fields fall
// back to the harga_barang ascending default.
func (s *ItemService) PaginateItems(ctx context.Context, pageNumber, pageSize int, sort, search string) (domain.ItemPage, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}

	sortField, sortOrder := parseSortParam(sort, "harga_barang", itemSortFields)
	searchField, searchKey := parseSearchParam(search, itemSearchFields)

	items, err := s.repo.FindPage(ctx, (pageNumber-1)*pageSize, pageSize, sortField, sortOrder, searchField, searchKey)
	if err != nil {
		return domain.ItemPage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	total, err := s.repo.Count(ctx, searchField, searchKey)
	if err != nil {
		return domain.ItemPage{}, fmt.Errorf("s.repo.Count -> %w", err)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return domain.ItemPage{
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		Count:           len(items),
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
		Data:            items,
	}, nil
}

func parseSortParam(sort, defaultField string, allowed map[string]bool) (field, order string) {
	field = defaultField
	order = "asc"

	if sort == "" {
		return field, order
	}

	parts := strings.SplitN(sort, ":", 2)
	if allowed[parts[0]] {
		field = parts[0]
	}
	if len(parts) == 2 && parts[1] == "desc" {
		order = "desc"
	}

	return field, order
}

func parseSearchParam(search string, allowed map[string]bool) (field, key string) {
	if search == "" {
		return "", ""
	}

	parts := strings.SplitN(search, ":", 2)
	if len(parts) != 2 || !allowed[parts[0]] {
		return "", ""
	}

	return parts[0], parts[1]
}
