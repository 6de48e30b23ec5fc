package domain

// PurchaseReceipt is the result of a settled purchase. It is derived at
// request time and never persisted; the durable effect is the paired
// stock decrement and saldo debit.
type PurchaseReceipt struct {
	ItemID      uint `json:"id_barang"`
	PelangganID uint `json:"id_pelanggan"`
	Quantity    int  `json:"banyak_barang"`
	HargaTotal  int  `json:"hargaTotal"`
}
