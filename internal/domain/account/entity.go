package account

import "time"

// Account is a login identity. Accounts start inactive with no usable
// password (PasswordHash nil) and become active only once the owner follows
// the activation link and sets a password.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash *string
	IsActive     bool
	CreatedAt    time.Time
}

// CanLogin reports whether the account accepts password authentication.
func (a *Account) CanLogin() bool {
	return a.IsActive && a.PasswordHash != nil
}
