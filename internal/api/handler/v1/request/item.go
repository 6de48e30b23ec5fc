package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateItemRequest struct {
	NamaBarang    string `json:"nama_barang"`
	JenisBarang   string `json:"jenis_barang"`
	StokBarang    int    `json:"stok_barang"`
	HargaBarang   int    `json:"harga_barang"`
	Email         string `json:"email"`
	LokasiPenjual string `json:"lokasi_penjual"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NamaBarang, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.JenisBarang, validation.Required),
		validation.Field(&req.StokBarang, validation.Min(0)),
		validation.Field(&req.HargaBarang, validation.Min(0)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.LokasiPenjual, validation.Required),
	)
}

type UpdateItemRequest struct {
	NamaBarang    string `json:"nama_barang"`
	JenisBarang   string `json:"jenis_barang"`
	StokBarang    int    `json:"stok_barang"`
	HargaBarang   int    `json:"harga_barang"`
	Email         string `json:"email"`
	LokasiPenjual string `json:"lokasi_penjual"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NamaBarang, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.JenisBarang, validation.Required),
		validation.Field(&req.StokBarang, validation.Min(0)),
		validation.Field(&req.HargaBarang, validation.Min(0)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.LokasiPenjual, validation.Required),
	)
}

// StockUpdateRequest drives both the reduce and restock endpoints;
// new_stok is the number of units to move, not an absolute level.
type StockUpdateRequest struct {
	ID      uint `json:"id"`
	NewStok int  `json:"newStok"`
}

func (req *StockUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.NewStok, validation.Min(0)),
	)
}
