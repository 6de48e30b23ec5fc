package service

import (
	"context"
	"fmt"

	"github.com/pasarku/pasarku-api/internal/domain"
)

type PurchaseItemReader interface {
	FindByID(ctx context.Context, id uint) (domain.Item, error)
}

type PurchasePelangganReader interface {
	FindByID(ctx context.Context, id uint) (domain.Pelanggan, error)
}

type PurchaseExecutor interface {
	Execute(ctx context.Context, itemID, pelangganID uint, quantity, totalHarga int) error
}

// PurchaseService settles purchases. It is stateless between calls;
// every purchase is validated and committed independently.
type PurchaseService struct {
	items      PurchaseItemReader
	pelanggans PurchasePelangganReader
	executor   PurchaseExecutor
}

func NewPurchaseService(items PurchaseItemReader, pelanggans PurchasePelangganReader, executor PurchaseExecutor) *PurchaseService {
	return &PurchaseService{
		items:      items,
		pelanggans: pelanggans,
		executor:   executor,
	}
}

// Purchase buys quantity units of an item for a pelanggan. The item and
// pelanggan lookups give early not-found answers; the settlement itself
// re-checks stock and saldo inside one transaction, so a purchase that
// fails at the saldo debit leaves the stock untouched.
func (s *PurchaseService) Purchase(ctx context.Context, itemID, pelangganID uint, quantity int) (domain.PurchaseReceipt, error) {
	if quantity < 0 {
		return domain.PurchaseReceipt{}, ErrInvalidQuantity
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return domain.PurchaseReceipt{}, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	if _, err = s.pelanggans.FindByID(ctx, pelangganID); err != nil {
		return domain.PurchaseReceipt{}, fmt.Errorf("s.pelanggans.FindByID -> %w", err)
	}

	totalHarga := item.HargaBarang * quantity

	if err = s.executor.Execute(ctx, itemID, pelangganID, quantity, totalHarga); err != nil {
		return domain.PurchaseReceipt{}, fmt.Errorf("s.executor.Execute -> %w", err)
	}

	return domain.PurchaseReceipt{
		ItemID:      itemID,
		PelangganID: pelangganID,
		Quantity:    quantity,
		HargaTotal:  totalHarga,
	}, nil
}
