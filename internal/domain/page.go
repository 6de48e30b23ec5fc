package domain

type ItemPage struct {
	PageNumber      int    `json:"page_number"`
	PageSize        int    `json:"page_size"`
	Count           int    `json:"count"`
	TotalPages      int    `json:"total_pages"`
	HasPreviousPage bool   `json:"has_previous_page"`
	HasNextPage     bool   `json:"has_next_page"`
	Data            []Item `json:"data"`
}

type UserPage struct {
	PageNumber      int    `json:"page_number"`
	PageSize        int    `json:"page_size"`
	Count           int    `json:"count"`
	TotalPages      int    `json:"total_pages"`
	HasPreviousPage bool   `json:"has_previous_page"`
	HasNextPage     bool   `json:"has_next_page"`
	Data            []User `json:"data"`
}
