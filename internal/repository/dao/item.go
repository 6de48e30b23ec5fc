package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Item struct {
	ID uint `gorm:"primaryKey"`

	NamaBarang    string `gorm:"not null"`
	JenisBarang   string `gorm:"not null"`
	StokBarang    int    `gorm:"not null;check:stok_barang >= 0"`
	HargaBarang   int    `gorm:"not null;check:harga_barang >= 0"`
	Email         string `gorm:"not null;index"` // penjual reference
	LokasiPenjual string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) FindByEmail(ctx context.Context, email string) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Where("email = ?", email).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// FindPage applies offset/limit pagination with an optional ILIKE search.
// sortField and searchField must come from an allow-list; the service
// layer owns that check.
func (d *ItemDAO) FindPage(ctx context.Context, offset, limit int, sortField, sortOrder, searchField, searchKey string) ([]Item, error) {
	var items []Item

	query := d.db.WithContext(ctx).Model(&Item{})
	if searchField != "" {
		query = query.Where(searchField+" ILIKE ?", "%"+searchKey+"%")
	}
	query = query.Order(sortField + " " + sortOrder).Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) Count(ctx context.Context, searchField, searchKey string) (int64, error) {
	var count int64

	query := d.db.WithContext(ctx).Model(&Item{})
	if searchField != "" {
		query = query.Where(searchField+" ILIKE ?", "%"+searchKey+"%")
	}

	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Model(&Item{ID: item.ID}).Updates(map[string]interface{}{
		"nama_barang":    item.NamaBarang,
		"jenis_barang":   item.JenisBarang,
		"stok_barang":    item.StokBarang,
		"harga_barang":   item.HargaBarang,
		"lokasi_penjual": item.LokasiPenjual,
	})
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, item.ID)
}

func (d *ItemDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// ReduceStock decrements stok_barang by quantity in a single guarded
// UPDATE. Two concurrent calls can never drive the stock negative: the
// WHERE clause makes the loser of the race affect zero rows.
func (d *ItemDAO) ReduceStock(ctx context.Context, id uint, quantity int) error {
	result := d.db.WithContext(ctx).Model(&Item{}).
		Where("id = ? AND stok_barang >= ?", id, quantity).
		UpdateColumn("stok_barang", gorm.Expr("stok_barang - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return d.stockFailure(ctx, id)
	}

	return nil
}

func (d *ItemDAO) AddStock(ctx context.Context, id uint, quantity int) error {
	result := d.db.WithContext(ctx).Model(&Item{}).
		Where("id = ?", id).
		UpdateColumn("stok_barang", gorm.Expr("stok_barang + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// stockFailure tells a missing item apart from an insufficient one after
// a guarded update affected zero rows.
func (d *ItemDAO) stockFailure(ctx context.Context, id uint) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}

	return ErrInsufficientStock
}
