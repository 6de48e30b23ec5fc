package response

type ReduceStokResponse struct {
	ID         uint   `json:"id"`
	ReduceStok int    `json:"reduce_stok"`
	Message    string `json:"message"`
}

type AddedStokResponse struct {
	Message string `json:"message"`
}
