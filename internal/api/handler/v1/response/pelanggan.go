package response

// BuyItemResponse echoes the purchase fields back with the settled
// total. The hargaTotal key is inconsistent with the rest of the wire
// format but existing clients depend on it.
type BuyItemResponse struct {
	IDBarang     uint   `json:"id_barang"`
	IDPelanggan  uint   `json:"id_pelanggan"`
	BanyakBarang int    `json:"banyak_barang"`
	HargaTotal   int    `json:"hargaTotal"`
	JenisBarang  string `json:"jenis_barang"`
	Message      string `json:"message"`
}

type TopUpResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
