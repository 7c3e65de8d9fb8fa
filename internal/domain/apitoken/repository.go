package apitoken

import "context"

// APITokenRepository defines data access methods for API tokens.
type APITokenRepository interface {
	// Exists reports whether a token with this exact value is stored
	Exists(ctx context.Context, token string) (bool, error)
	Create(ctx context.Context, newToken APIToken) (APIToken, error)
	List(ctx context.Context) ([]APIToken, error)
}
