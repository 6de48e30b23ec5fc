package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

type mockItemRepo struct {
	mu    sync.Mutex
	items map[uint]*domain.Item
}

func newMockItemRepo(items ...domain.Item) *mockItemRepo {
	repo := &mockItemRepo{items: make(map[uint]*domain.Item)}
	for i := range items {
		item := items[i]
		repo.items[item.ID] = &item
	}

	return repo
}

func (m *mockItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = uint(len(m.items) + 1)
	m.items[item.ID] = &item

	return item, nil
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return domain.Item{}, dao.ErrItemNotFound
	}

	return *item, nil
}

func (m *mockItemRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]domain.Item, 0, len(m.items))
	for _, item := range m.items {
		all = append(all, *item)
	}

	return all, nil
}

func (m *mockItemRepo) FindByEmail(ctx context.Context, email string) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []domain.Item
	for _, item := range m.items {
		if item.Email == email {
			matched = append(matched, *item)
		}
	}

	return matched, nil
}

func (m *mockItemRepo) FindPage(ctx context.Context, offset, limit int, sortField, sortOrder, searchField, searchKey string) ([]domain.Item, error) {
	return m.FindAll(ctx)
}

func (m *mockItemRepo) Count(ctx context.Context, searchField, searchKey string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.items)), nil
}

func (m *mockItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; !ok {
		return domain.Item{}, dao.ErrItemNotFound
	}
	m.items[item.ID] = &item

	return item, nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return dao.ErrItemNotFound
	}
	delete(m.items, id)

	return nil
}

func (m *mockItemRepo) ReduceStock(ctx context.Context, id uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return dao.ErrItemNotFound
	}
	if item.StokBarang < quantity {
		return dao.ErrInsufficientStock
	}
	item.StokBarang -= quantity

	return nil
}

func (m *mockItemRepo) AddStock(ctx context.Context, id uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return dao.ErrItemNotFound
	}
	item.StokBarang += quantity

	return nil
}

func TestReduceStock(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, StokBarang: 10, HargaBarang: 50})
	svc := NewItemService(repo)

	if err := svc.ReduceStock(context.Background(), 1, 4); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if repo.items[1].StokBarang != 6 {
		t.Errorf("expected stock 6, got %d", repo.items[1].StokBarang)
	}
}

func TestReduceStock_Insufficient(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, StokBarang: 3})
	svc := NewItemService(repo)

	err := svc.ReduceStock(context.Background(), 1, 4)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}
	if repo.items[1].StokBarang != 3 {
		t.Errorf("expected stock unchanged at 3, got %d", repo.items[1].StokBarang)
	}
}

func TestReduceStock_ExactStockToZero(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, StokBarang: 5})
	svc := NewItemService(repo)

	if err := svc.ReduceStock(context.Background(), 1, 5); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if repo.items[1].StokBarang != 0 {
		t.Errorf("expected stock 0, got %d", repo.items[1].StokBarang)
	}
}

func TestReduceStock_NegativeQuantity(t *testing.T) {
	svc := NewItemService(newMockItemRepo())

	err := svc.ReduceStock(context.Background(), 1, -1)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got: %v", err)
	}
}

func TestReduceStock_NotFound(t *testing.T) {
	svc := NewItemService(newMockItemRepo())

	err := svc.ReduceStock(context.Background(), 42, 1)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestAddStock(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, StokBarang: 2})
	svc := NewItemService(repo)

	if err := svc.AddStock(context.Background(), 1, 8); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if repo.items[1].StokBarang != 10 {
		t.Errorf("expected stock 10, got %d", repo.items[1].StokBarang)
	}
}

func TestQuote(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, StokBarang: 10, HargaBarang: 2500})
	svc := NewItemService(repo)

	total, err := svc.Quote(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if total != 10000 {
		t.Errorf("expected total 10000, got %d", total)
	}
}

func TestQuote_ZeroQuantity(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, HargaBarang: 2500})
	svc := NewItemService(repo)

	total, err := svc.Quote(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
}

func TestParseSortParam(t *testing.T) {
	tests := []struct {
		name      string
		sort      string
		wantField string
		wantOrder string
	}{
		{"empty falls back to default", "", "harga_barang", "asc"},
		{"known field ascending", "nama_barang:asc", "nama_barang", "asc"},
		{"known field descending", "stok_barang:desc", "stok_barang", "desc"},
		{"unknown field keeps default", "password:desc", "harga_barang", "desc"},
		{"missing order defaults to asc", "nama_barang", "nama_barang", "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order := parseSortParam(tt.sort, "harga_barang", itemSortFields)
			if field != tt.wantField || order != tt.wantOrder {
				t.Errorf("got (%q, %q), want (%q, %q)", field, order, tt.wantField, tt.wantOrder)
			}
		})
	}
}

func TestParseSearchParam(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		wantField string
		wantKey   string
	}{
		{"empty", "", "", ""},
		{"known field", "nama_barang:beras", "nama_barang", "beras"},
		{"unknown field rejected", "password:x", "", ""},
		{"missing key rejected", "nama_barang", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, key := parseSearchParam(tt.search, itemSearchFields)
			if field != tt.wantField || key != tt.wantKey {
				t.Errorf("got (%q, %q), want (%q, %q)", field, key, tt.wantField, tt.wantKey)
			}
		})
	}
}
