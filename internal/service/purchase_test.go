package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

// mockMarketStore backs all three purchase dependencies with one
// mutex-guarded state, mirroring the all-or-nothing settlement of the
// real transaction.
type mockMarketStore struct {
	mu         sync.Mutex
	items      map[uint]*domain.Item
	pelanggans map[uint]*domain.Pelanggan
}

func newMockMarketStore() *mockMarketStore {
	return &mockMarketStore{
		items:      make(map[uint]*domain.Item),
		pelanggans: make(map[uint]*domain.Pelanggan),
	}
}

func (m *mockMarketStore) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return domain.Item{}, dao.ErrItemNotFound
	}

	return *item, nil
}

type mockPelangganReader struct {
	store *mockMarketStore
}

func (m *mockPelangganReader) FindByID(ctx context.Context, id uint) (domain.Pelanggan, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	pelanggan, ok := m.store.pelanggans[id]
	if !ok {
		return domain.Pelanggan{}, dao.ErrPelangganNotFound
	}

	return *pelanggan, nil
}

type mockExecutor struct {
	store *mockMarketStore
}

func (m *mockExecutor) Execute(ctx context.Context, itemID, pelangganID uint, quantity, totalHarga int) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	item, ok := m.store.items[itemID]
	if !ok {
		return dao.ErrItemNotFound
	}
	pelanggan, ok := m.store.pelanggans[pelangganID]
	if !ok {
		return dao.ErrPelangganNotFound
	}

	// Both guards pass before either side mutates, like the real
	// transaction.
	if item.StokBarang < quantity {
		return dao.ErrInsufficientStock
	}
	if pelanggan.Saldo < totalHarga {
		return dao.ErrInsufficientSaldo
	}

	item.StokBarang -= quantity
	pelanggan.Saldo -= totalHarga

	return nil
}

func newPurchaseFixture(stock, harga, saldo int) (*mockMarketStore, *PurchaseService) {
	store := newMockMarketStore()
	store.items[1] = &domain.Item{ID: 1, NamaBarang: "beras", JenisBarang: "sembako", StokBarang: stock, HargaBarang: harga}
	store.pelanggans[7] = &domain.Pelanggan{ID: 7, Name: "Budi", Saldo: saldo}

	svc := NewPurchaseService(store, &mockPelangganReader{store: store}, &mockExecutor{store: store})

	return store, svc
}

func TestPurchase_Success(t *testing.T) {
	store, svc := newPurchaseFixture(10, 50, 1000)

	receipt, err := svc.Purchase(context.Background(), 1, 7, 3)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if receipt.HargaTotal != 150 {
		t.Errorf("expected total 150, got %d", receipt.HargaTotal)
	}
	if store.items[1].StokBarang != 7 {
		t.Errorf("expected stock 7, got %d", store.items[1].StokBarang)
	}
	if store.pelanggans[7].Saldo != 850 {
		t.Errorf("expected saldo 850, got %d", store.pelanggans[7].Saldo)
	}
}

func TestPurchase_InsufficientStock(t *testing.T) {
	store, svc := newPurchaseFixture(2, 50, 1000)

	_, err := svc.Purchase(context.Background(), 1, 7, 5)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	if store.items[1].StokBarang != 2 {
		t.Errorf("expected stock unchanged at 2, got %d", store.items[1].StokBarang)
	}
	if store.pelanggans[7].Saldo != 1000 {
		t.Errorf("expected saldo unchanged at 1000, got %d", store.pelanggans[7].Saldo)
	}
}

func TestPurchase_InsufficientSaldo_LeavesStockUntouched(t *testing.T) {
	store, svc := newPurchaseFixture(10, 50, 100)

	_, err := svc.Purchase(context.Background(), 1, 7, 3) // total 150 > saldo 100
	if !errors.Is(err, ErrInsufficientSaldo) {
		t.Errorf("expected ErrInsufficientSaldo, got: %v", err)
	}

	if store.items[1].StokBarang != 10 {
		t.Errorf("expected stock unchanged at 10, got %d", store.items[1].StokBarang)
	}
	if store.pelanggans[7].Saldo != 100 {
		t.Errorf("expected saldo unchanged at 100, got %d", store.pelanggans[7].Saldo)
	}
}

func TestPurchase_ItemNotFound(t *testing.T) {
	_, svc := newPurchaseFixture(10, 50, 1000)

	_, err := svc.Purchase(context.Background(), 99, 7, 1)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestPurchase_PelangganNotFound(t *testing.T) {
	_, svc := newPurchaseFixture(10, 50, 1000)

	_, err := svc.Purchase(context.Background(), 1, 99, 1)
	if !errors.Is(err, ErrPelangganNotFound) {
		t.Errorf("expected ErrPelangganNotFound, got: %v", err)
	}
}

func TestPurchase_NegativeQuantity(t *testing.T) {
	_, svc := newPurchaseFixture(10, 50, 1000)

	_, err := svc.Purchase(context.Background(), 1, 7, -1)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got: %v", err)
	}
}

func TestPurchase_Concurrent(t *testing.T) {
	initialStock := 20
	totalRequests := 50

	store, svc := newPurchaseFixture(initialStock, 1, 1000000)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Purchase(context.Background(), 1, 7, 1); err == nil {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successes, got %d", initialStock, successCount.Load())
	}
	if store.items[1].StokBarang != 0 {
		t.Errorf("expected stock 0, got %d", store.items[1].StokBarang)
	}
}
