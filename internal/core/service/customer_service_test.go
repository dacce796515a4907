package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

type stubCustomerRepo struct {
	byID    map[int64]*domain.Customer
	byEmail map[string]int64
	nextID  int64
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		byID:    make(map[int64]*domain.Customer),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := r.byID[id]; ok {
		return cloneCustomer(c), nil
	}
	return nil, domain.NotFound("customer", id)
}

func (r *stubCustomerRepo) List(_ context.Context, limit, offset int) ([]domain.Customer, error) {
	ids := make([]int64, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	customers := make([]domain.Customer, 0, len(ids))
	for _, id := range ids {
		customers = append(customers, *r.byID[id])
	}
	if offset >= len(customers) {
		return []domain.Customer{}, nil
	}
	end := offset + limit
	if end > len(customers) {
		end = len(customers)
	}
	return customers[offset:end], nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if _, exists := r.byEmail[customer.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := cloneCustomer(customer)
	created.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.byID[created.ID] = created
	r.byEmail[created.Email] = created.ID
	return cloneCustomer(created), nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id int64, patch ports.CustomerPatch) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFound("customer", id)
	}
	if patch.Email != nil {
		if other, exists := r.byEmail[*patch.Email]; exists && other != id {
			return nil, domain.ErrEmailTaken
		}
		delete(r.byEmail, c.Email)
		c.Email = *patch.Email
		r.byEmail[c.Email] = id
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	c.UpdatedAt = time.Now().UTC()
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.NotFound("customer", id)
	}
	delete(r.byEmail, c.Email)
	delete(r.byID, id)
	return nil
}

func TestCustomerService_Create_OptionalFieldsStayAbsent(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	customer, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:  "John Doe",
		Email: "john@x.com",
		Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if customer.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if customer.Company != nil || customer.Address != nil {
		t.Fatalf("expected company and address to be absent: %+v", customer)
	}
}

func TestCustomerService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	input := ports.CreateCustomerInput{Name: "John", Email: "john@x.com", Phone: "555-0100"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	input.Name = "Other John"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCustomerService_Update_Patch(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "John", Email: "john@x.com", Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	company := "Acme Inc"
	companyPtr := &company
	newPhone := "555-0200"
	updated, err := svc.Update(context.Background(), created.ID, ports.CustomerPatch{
		Phone:   &newPhone,
		Company: &companyPtr,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != "555-0200" {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Company == nil || *updated.Company != "Acme Inc" {
		t.Fatalf("company not updated: %v", updated.Company)
	}
	// Untouched fields keep their values.
	if updated.Name != "John" || updated.Email != "john@x.com" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestCustomerService_DeleteThenGet(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "John", Email: "john@x.com", Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var nf *domain.NotFoundError
	if _, err := svc.Get(context.Background(), created.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestCustomerService_List_Pagination(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	for i := 0; i < 7; i++ {
		_, err := svc.Create(context.Background(), ports.CreateCustomerInput{
			Name:  "Customer",
			Email: string(rune('a'+i)) + "@x.com",
			Phone: "555-0100",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ports.PageRequest{Page: 4, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Customers) != 1 {
		t.Fatalf("expected 1 customer on last page, got %d", len(page.Customers))
	}
	meta := page.Meta
	if meta.Total != 7 || meta.TotalPages != 4 || meta.HasNext || !meta.HasPrev {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}
