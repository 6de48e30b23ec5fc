package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPenjualEmailExists = errors.New("penjual already exists")
	ErrPenjualNotFound    = errors.New("penjual not found")
)

type Penjual struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Income   int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PenjualDAO struct {
	db *gorm.DB
}

func NewPenjualDAO(db *gorm.DB) *PenjualDAO {
	return &PenjualDAO{
		db: db,
	}
}

func (d *PenjualDAO) Insert(ctx context.Context, penjual Penjual) (Penjual, error) {
	result := d.db.WithContext(ctx).Create(&penjual)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_penjuals_email"`) {
			return Penjual{}, ErrPenjualEmailExists
		}

		return Penjual{}, result.Error
	}

	return penjual, nil
}

func (d *PenjualDAO) FindByID(ctx context.Context, id uint) (Penjual, error) {
	var penjual Penjual

	result := d.db.WithContext(ctx).First(&penjual, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Penjual{}, ErrPenjualNotFound
		}

		return Penjual{}, result.Error
	}

	return penjual, nil
}

func (d *PenjualDAO) FindByEmail(ctx context.Context, email string) (Penjual, error) {
	var penjual Penjual

	result := d.db.WithContext(ctx).First(&penjual, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Penjual{}, ErrPenjualNotFound
		}

		return Penjual{}, result.Error
	}

	return penjual, nil
}

func (d *PenjualDAO) FindAll(ctx context.Context) ([]Penjual, error) {
	var penjuals []Penjual

	result := d.db.WithContext(ctx).Find(&penjuals)
	if result.Error != nil {
		return nil, result.Error
	}

	return penjuals, nil
}

func (d *PenjualDAO) Update(ctx context.Context, id uint, name, email string) error {
	result := d.db.WithContext(ctx).Model(&Penjual{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  name,
		"email": email,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPenjualNotFound
	}

	return nil
}

func (d *PenjualDAO) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := d.db.WithContext(ctx).Model(&Penjual{}).Where("id = ?", id).
		UpdateColumn("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPenjualNotFound
	}

	return nil
}

func (d *PenjualDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Penjual{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPenjualNotFound
	}

	return nil
}
