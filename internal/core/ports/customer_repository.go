package ports

import (
	"context"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// CustomerPatch is a partial update of a customer row. Nil fields are left
// untouched. Company and Address use a double pointer so a patch can
// distinguish "not mentioned" (nil) from "clear to NULL" (*nil).
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company **string
	Address **string
}

// Empty reports whether the patch changes nothing.
func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.Company == nil && p.Address == nil
}

// CustomerRepository defines the persistence interface for customers.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
