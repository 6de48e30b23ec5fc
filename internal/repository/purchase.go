package repository

import (
	"context"
	"fmt"
)

type PurchaseDAO interface {
	Execute(ctx context.Context, itemID, pelangganID uint, quantity, totalHarga int) error
}

// PurchaseRepository exposes the transactional settlement of a purchase:
// stock decrement and saldo debit commit together or not at all.
type PurchaseRepository struct {
	dao PurchaseDAO
}

func NewPurchaseRepository(dao PurchaseDAO) *PurchaseRepository {
	return &PurchaseRepository{
		dao: dao,
	}
}

func (r *PurchaseRepository) Execute(ctx context.Context, itemID, pelangganID uint, quantity, totalHarga int) error {
	if err := r.dao.Execute(ctx, itemID, pelangganID, quantity, totalHarga); err != nil {
		return fmt.Errorf("r.dao.Execute -> %w", err)
	}

	return nil
}
