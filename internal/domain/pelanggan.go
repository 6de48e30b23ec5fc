package domain

import "time"

// Pelanggan is a buyer account. Saldo stays >= 0; only the saldo
// adjusters in the pelanggan service mutate it.
type Pelanggan struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Saldo     int       `json:"saldo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
