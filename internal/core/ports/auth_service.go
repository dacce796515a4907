package ports

import (
	"context"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// AuthService verifies credentials, issues signed session tokens, and
// resolves a token back to a user identity.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ResolveToken(token string) (domain.Identity, error)
	ResolveByID(ctx context.Context, id int64) (*domain.User, error)
}
