package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// BuyItemRequest is the purchase payload. jenis_barang rides along and
// is echoed back untouched.
type BuyItemRequest struct {
	IDBarang     uint   `json:"id_barang"`
	IDPelanggan  uint   `json:"id_pelanggan"`
	BanyakBarang int    `json:"banyak_barang"`
	JenisBarang  string `json:"jenis_barang"`
}

func (req *BuyItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IDBarang, validation.Required),
		validation.Field(&req.IDPelanggan, validation.Required),
		validation.Field(&req.BanyakBarang, validation.Min(0)),
	)
}

type TopUpRequest struct {
	Amount int `json:"amount"`
}

func (req *TopUpRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
	)
}

type CreatePelangganRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Saldo    int    `json:"saldo"`
}

func (req *CreatePelangganRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Saldo, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type UpdatePelangganRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req *UpdatePelangganRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}
