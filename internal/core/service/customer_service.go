package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/api/metrics"
	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

// CustomerService implements customer management on top of the customer
// repository.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	created, err := s.repo.Create(ctx, &domain.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Address: input.Address,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("customer_id", created.ID).Str("email", created.Email).Msg("customer created")
	metrics.EntityWritesTotal.WithLabelValues("customer", "create").Inc()
	return created, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, req ports.PageRequest) (*ports.CustomerPage, error) {
	req = req.Normalize()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.repo.List(ctx, req.Limit, req.Offset())
	if err != nil {
		return nil, err
	}

	return &ports.CustomerPage{Customers: customers, Meta: ports.NewPageMeta(req, total)}, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, patch ports.CustomerPatch) (*domain.Customer, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer updated")
	metrics.EntityWritesTotal.WithLabelValues("customer", "update").Inc()
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	metrics.EntityWritesTotal.WithLabelValues("customer", "delete").Inc()
	return nil
}
