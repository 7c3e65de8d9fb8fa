package apitoken

import "time"

// APIToken is a static shared secret granting access to the API namespace.
// Tokens are generated server-side (64 hex characters) and never modified.
type APIToken struct {
	ID          int64
	Token       string
	Description *string
	CreatedAt   time.Time
}
