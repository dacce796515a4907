package ports

import (
	"context"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// CreateCustomerInput carries the fields needed to create a customer.
// Company and Address are optional; nil means absent, stored as NULL.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company *string
	Address *string
}

// CustomerPage is one page of customers plus its pagination metadata.
type CustomerPage struct {
	Customers []domain.Customer
	Meta      PageMeta
}

// CustomerService implements customer management.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, req PageRequest) (*CustomerPage, error)
	Update(ctx context.Context, id int64, patch CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
