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
	ErrPelangganEmailExists = errors.New("pelanggan already exists")
	ErrPelangganNotFound    = errors.New("pelanggan not found")
	ErrInsufficientSaldo    = errors.New("insufficient saldo")
)

type Pelanggan struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Saldo    int    `gorm:"not null;default:0;check:saldo >= 0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PelangganDAO struct {
	db *gorm.DB
}

func NewPelangganDAO(db *gorm.DB) *PelangganDAO {
	return &PelangganDAO{
		db: db,
	}
}

func (d *PelangganDAO) Insert(ctx context.Context, pelanggan Pelanggan) (Pelanggan, error) {
	result := d.db.WithContext(ctx).Create(&pelanggan)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_pelanggans_email"`) {
			return Pelanggan{}, ErrPelangganEmailExists
		}

		return Pelanggan{}, result.Error
	}

	return pelanggan, nil
}

func (d *PelangganDAO) FindByID(ctx context.Context, id uint) (Pelanggan, error) {
	var pelanggan Pelanggan

	result := d.db.WithContext(ctx).First(&pelanggan, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Pelanggan{}, ErrPelangganNotFound
		}

		return Pelanggan{}, result.Error
	}

	return pelanggan, nil
}

func (d *PelangganDAO) FindByEmail(ctx context.Context, email string) (Pelanggan, error) {
	var pelanggan Pelanggan

	result := d.db.WithContext(ctx).First(&pelanggan, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Pelanggan{}, ErrPelangganNotFound
		}

		return Pelanggan{}, result.Error
	}

	return pelanggan, nil
}

func (d *PelangganDAO) FindAll(ctx context.Context) ([]Pelanggan, error) {
	var pelanggans []Pelanggan

	result := d.db.WithContext(ctx).Find(&pelanggans)
	if result.Error != nil {
		return nil, result.Error
	}

	return pelanggans, nil
}

func (d *PelangganDAO) Update(ctx context.Context, id uint, name, email string) error {
	result := d.db.WithContext(ctx).Model(&Pelanggan{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  name,
		"email": email,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPelangganNotFound
	}

	return nil
}

func (d *PelangganDAO) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := d.db.WithContext(ctx).Model(&Pelanggan{}).Where("id = ?", id).
		UpdateColumn("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPelangganNotFound
	}

	return nil
}

func (d *PelangganDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Pelanggan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPelangganNotFound
	}

	return nil
}

// DebitSaldo subtracts amount from saldo in one guarded UPDATE, so a
// concurrent debit can never push the saldo below zero.
func (d *PelangganDAO) DebitSaldo(ctx context.Context, id uint, amount int) error {
	result := d.db.WithContext(ctx).Model(&Pelanggan{}).
		Where("id = ? AND saldo >= ?", id, amount).
		UpdateColumn("saldo", gorm.Expr("saldo - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return d.saldoFailure(ctx, id)
	}

	return nil
}

func (d *PelangganDAO) CreditSaldo(ctx context.Context, id uint, amount int) error {
	result := d.db.WithContext(ctx).Model(&Pelanggan{}).
		Where("id = ?", id).
		UpdateColumn("saldo", gorm.Expr("saldo + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPelangganNotFound
	}

	return nil
}

func (d *PelangganDAO) saldoFailure(ctx context.Context, id uint) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Pelanggan{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPelangganNotFound
	}

	return ErrInsufficientSaldo
}
