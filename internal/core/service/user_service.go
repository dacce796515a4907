package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/crm-api/internal/api/metrics"
	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

// UserService implements user management on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleViewer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("user created")
	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, req ports.PageRequest) (*ports.UserPage, error) {
	req = req.Normalize()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx, req.Limit, req.Offset())
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{Users: users, Meta: ports.NewPageMeta(req, total)}, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidRole
	}

	patch := ports.UserPatch{Username: input.Username, Role: input.Role}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return updated, nil
}

// Delete removes a user. A user may never delete their own account: the
// acting identity is compared against the target id before any query runs.
func (s *UserService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("actor_id", actorID).Msg("user deleted")
	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	return nil
}
