package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/pasarku/pasarku-api/internal/domain"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
)

type mockPelangganRepo struct {
	mu         sync.Mutex
	pelanggans map[uint]*domain.Pelanggan
}

func newMockPelangganRepo(pelanggans ...domain.Pelanggan) *mockPelangganRepo {
	repo := &mockPelangganRepo{pelanggans: make(map[uint]*domain.Pelanggan)}
	for i := range pelanggans {
		p := pelanggans[i]
		repo.pelanggans[p.ID] = &p
	}

	return repo
}

func (m *mockPelangganRepo) Create(ctx context.Context, pelanggan domain.Pelanggan) (domain.Pelanggan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.pelanggans {
		if p.Email == pelanggan.Email {
			return domain.Pelanggan{}, dao.ErrPelangganEmailExists
		}
	}

	pelanggan.ID = uint(len(m.pelanggans) + 1)
	m.pelanggans[pelanggan.ID] = &pelanggan

	return pelanggan, nil
}

func (m *mockPelangganRepo) FindByID(ctx context.Context, id uint) (domain.Pelanggan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pelanggans[id]
	if !ok {
		return domain.Pelanggan{}, dao.ErrPelangganNotFound
	}

	return *p, nil
}

func (m *mockPelangganRepo) FindByEmail(ctx context.Context, email string) (domain.Pelanggan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.pelanggans {
		if p.Email == email {
			return *p, nil
		}
	}

	return domain.Pelanggan{}, dao.ErrPelangganNotFound
}

func (m *mockPelangganRepo) FindAll(ctx context.Context) ([]domain.Pelanggan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]domain.Pelanggan, 0, len(m.pelanggans))
	for _, p := range m.pelanggans {
		all = append(all, *p)
	}

	return all, nil
}

func (m *mockPelangganRepo) Update(ctx context.Context, id uint, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pelanggans[id]
	if !ok {
		return dao.ErrPelangganNotFound
	}
	p.Name = name
	p.Email = email

	return nil
}

func (m *mockPelangganRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pelanggans[id]
	if !ok {
		return dao.ErrPelangganNotFound
	}
	p.Password = hashedPassword

	return nil
}

func (m *mockPelangganRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pelanggans[id]; !ok {
		return dao.ErrPelangganNotFound
	}
	delete(m.pelanggans, id)

	return nil
}

func (m *mockPelangganRepo) DebitSaldo(ctx context.Context, id uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pelanggans[id]
	if !ok {
		return dao.ErrPelangganNotFound
	}
	if p.Saldo < amount {
		return dao.ErrInsufficientSaldo
	}
	p.Saldo -= amount

	return nil
}

func (m *mockPelangganRepo) CreditSaldo(ctx context.Context, id uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pelanggans[id]
	if !ok {
		return dao.ErrPelangganNotFound
	}
	p.Saldo += amount

	return nil
}

func TestTopUpSaldo(t *testing.T) {
	repo := newMockPelangganRepo(domain.Pelanggan{ID: 1, Saldo: 100})
	svc := NewPelangganService(repo)

	if err := svc.TopUpSaldo(context.Background(), 1, 500); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if repo.pelanggans[1].Saldo != 600 {
		t.Errorf("expected saldo 600, got %d", repo.pelanggans[1].Saldo)
	}
}

func TestTopUpSaldo_RejectsNonPositiveAmount(t *testing.T) {
	repo := newMockPelangganRepo(domain.Pelanggan{ID: 1, Saldo: 100})
	svc := NewPelangganService(repo)

	for _, amount := range []int{0, -5} {
		err := svc.TopUpSaldo(context.Background(), 1, amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %d: expected ErrInvalidAmount, got: %v", amount, err)
		}
	}

	if repo.pelanggans[1].Saldo != 100 {
		t.Errorf("expected saldo unchanged at 100, got %d", repo.pelanggans[1].Saldo)
	}
}

func TestTopUpSaldo_NotFound(t *testing.T) {
	svc := NewPelangganService(newMockPelangganRepo())

	err := svc.TopUpSaldo(context.Background(), 42, 100)
	if !errors.Is(err, ErrPelangganNotFound) {
		t.Errorf("expected ErrPelangganNotFound, got: %v", err)
	}
}

func TestDebitSaldo(t *testing.T) {
	repo := newMockPelangganRepo(domain.Pelanggan{ID: 1, Saldo: 100})
	svc := NewPelangganService(repo)

	if err := svc.DebitSaldo(context.Background(), 1, 60); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if repo.pelanggans[1].Saldo != 40 {
		t.Errorf("expected saldo 40, got %d", repo.pelanggans[1].Saldo)
	}
}

func TestDebitSaldo_Insufficient(t *testing.T) {
	repo := newMockPelangganRepo(domain.Pelanggan{ID: 1, Saldo: 50})
	svc := NewPelangganService(repo)

	err := svc.DebitSaldo(context.Background(), 1, 60)
	if !errors.Is(err, ErrInsufficientSaldo) {
		t.Errorf("expected ErrInsufficientSaldo, got: %v", err)
	}
	if repo.pelanggans[1].Saldo != 50 {
		t.Errorf("expected saldo unchanged at 50, got %d", repo.pelanggans[1].Saldo)
	}
}

func TestCreatePelanggan_HashesPassword(t *testing.T) {
	repo := newMockPelangganRepo()
	svc := NewPelangganService(repo)

	created, err := svc.CreatePelanggan(context.Background(), domain.Pelanggan{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "secret123",
		Saldo:    100,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	stored := repo.pelanggans[created.ID]
	if stored.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct1"), bcrypt.DefaultCost)
	repo := newMockPelangganRepo(domain.Pelanggan{ID: 1, Password: string(hash)})
	svc := NewPelangganService(repo)

	err := svc.ChangePassword(context.Background(), 1, "wrong999", "newpass12")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got: %v", err)
	}
}
