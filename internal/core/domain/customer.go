package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email already exists")

// Customer is a CRM contact. Customers are global records, not owned by
// any user. Company and Address are optional and stored as NULL when unset.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Company   *string   `json:"company" db:"company"`
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
