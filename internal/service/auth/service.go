package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	account.AccountRepository
	employee.EmployeeRepository
}

func NewAuthService(
	accountRepo account.AccountRepository,
	employeeRepo employee.EmployeeRepository,
) account.AuthService {
	return &AuthServiceImpl{
		AccountRepository:  accountRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Login implements account.AuthService. Unknown usernames, wrong passwords,
// inactive accounts, and accounts that never set a password all collapse
// into the same ErrInvalidCredentials.
func (s *AuthServiceImpl) Login(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
	acc, err := s.AccountRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return account.LoginResponse{}, account.ErrInvalidCredentials
		}
		return account.LoginResponse{}, fmt.Errorf("failed to get account: %w", err)
	}

	if !acc.CanLogin() {
		return account.LoginResponse{}, account.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(req.Password)); err != nil {
		return account.LoginResponse{}, account.ErrInvalidCredentials
	}

	resp := account.LoginResponse{
		Status: "success",
		UserID: acc.ID,
	}

	emp, err := s.EmployeeRepository.GetByAccountID(ctx, acc.ID)
	switch {
	case err == nil:
		resp.EmployeeID = &emp.ID
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// Account without an employee row; employee_id stays null
	default:
		return account.LoginResponse{}, fmt.Errorf("failed to get employee for account: %w", err)
	}

	return resp, nil
}
