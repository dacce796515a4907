package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

const customerColumns = "id, name, email, phone, company, address, created_at, updated_at"

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	query := "SELECT " + customerColumns + " FROM customers WHERE id = $1"
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("customer", id)
		}
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	query := "SELECT " + customerColumns + " FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2"
	if err := r.db.SelectContext(ctx, &customers, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers"); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `INSERT INTO customers (name, email, phone, company, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns
	var created domain.Customer
	err := r.db.GetContext(ctx, &created, query,
		customer.Name, customer.Email, customer.Phone, customer.Company, customer.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return &created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, patch ports.CustomerPatch) (*domain.Customer, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}

	var p patchSet
	if patch.Name != nil {
		p.set("name", *patch.Name)
	}
	if patch.Email != nil {
		p.set("email", *patch.Email)
	}
	if patch.Phone != nil {
		p.set("phone", *patch.Phone)
	}
	if patch.Company != nil {
		p.set("company", *patch.Company)
	}
	if patch.Address != nil {
		p.set("address", *patch.Address)
	}

	query, args := p.build("customers", id, customerColumns)
	var updated domain.Customer
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("customer", id)
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &updated, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if affected == 0 {
		return domain.NotFound("customer", id)
	}
	return nil
}
