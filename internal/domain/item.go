package domain

import "time"

// Item is a product listing owned by a penjual, referenced by email.
// StokBarang and HargaBarang are integers end to end; the store never
// holds them as text.
type Item struct {
	ID            uint      `json:"id"`
	NamaBarang    string    `json:"nama_barang"`
	JenisBarang   string    `json:"jenis_barang"`
	StokBarang    int       `json:"stok_barang"`
	HargaBarang   int       `json:"harga_barang"`
	Email         string    `json:"email"`
	LokasiPenjual string    `json:"lokasi_penjual"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
