package dao

import (
	"context"

	"gorm.io/gorm"
)

// PurchaseDAO settles a purchase: stock decrement and saldo debit in a
// single database transaction. Either both guarded updates land or
// neither does; a failed debit rolls the stock decrement back.
type PurchaseDAO struct {
	db *gorm.DB
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{
		db: db,
	}
}

func (d *PurchaseDAO) Execute(ctx context.Context, itemID, pelangganID uint, quantity, totalHarga int) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Item{}).
			Where("id = ? AND stok_barang >= ?", itemID, quantity).
			UpdateColumn("stok_barang", gorm.Expr("stok_barang - ?", quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return stockFailureTx(tx, itemID)
		}

		result = tx.Model(&Pelanggan{}).
			Where("id = ? AND saldo >= ?", pelangganID, totalHarga).
			UpdateColumn("saldo", gorm.Expr("saldo - ?", totalHarga))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return saldoFailureTx(tx, pelangganID)
		}

		return nil
	})
}

func stockFailureTx(tx *gorm.DB, itemID uint) error {
	var count int64
	if err := tx.Model(&Item{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}

	return ErrInsufficientStock
}

func saldoFailureTx(tx *gorm.DB, pelangganID uint) error {
	var count int64
	if err := tx.Model(&Pelanggan{}).Where("id = ?", pelangganID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPelangganNotFound
	}

	return ErrInsufficientSaldo
}
