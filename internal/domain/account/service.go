package account

import "context"

// AuthService defines password authentication for API clients
type AuthService interface {
	// Login checks username/password and returns the account id plus the
	// linked employee id when one exists
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

// ProvisioningService defines account creation and activation
type ProvisioningService interface {
	// CreateAccount creates an inactive account plus its employee row and
	// emails the activation link
	CreateAccount(ctx context.Context, req CreateAccountRequest) (ActivationPreview, error)

	// ValidateActivation checks an activation link without consuming it
	ValidateActivation(ctx context.Context, accountID int64, tokenString string) (ActivationPreview, error)

	// Activate sets the password, flips the account active, and returns the
	// activated account
	Activate(ctx context.Context, accountID int64, tokenString string, req SetPasswordRequest) (Account, error)
}

// ActivationPreview is what the activation form needs to render and what the
// staff endpoint returns after provisioning.
type ActivationPreview struct {
	AccountID  int64  `json:"account_id"`
	EmployeeID int64  `json:"employee_id,omitempty"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}
