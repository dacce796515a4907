package ports

import (
	"context"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// CreateUserInput carries the fields needed to create a user account.
// Password is plaintext here; the service hashes it before storage.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput is the service-level patch: Password is plaintext and
// hashed by the service before it reaches the repository.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// UserPage is one page of users plus its pagination metadata.
type UserPage struct {
	Users []domain.User
	Meta  PageMeta
}

// UserService implements user management.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, req PageRequest) (*UserPage, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	// Delete removes the user with the given id. actorID identifies the
	// authenticated caller; deleting one's own account is rejected.
	Delete(ctx context.Context, actorID, id int64) error
}
