package ports

import (
	"context"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// UserPatch is a partial update of a user row. Nil fields are left
// untouched; PasswordHash is the already-hashed replacement, never the
// plaintext.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Role == nil
}

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
