package account

import "context"

// AccountRepository defines data access methods for login accounts.
type AccountRepository interface {
	// Create inserts an inactive account with no usable password
	Create(ctx context.Context, newAccount Account) (Account, error)

	GetByID(ctx context.Context, id int64) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)

	// Activate sets the password hash and flips the account active
	Activate(ctx context.Context, id int64, passwordHash string) (Account, error)
}
