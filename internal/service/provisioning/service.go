package provisioning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/domain/project"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
	"github.com/trackforge/timetracker-backend/internal/pkg/email"
	"github.com/trackforge/timetracker-backend/internal/pkg/token"
	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
	"github.com/trackforge/timetracker-backend/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type ProvisioningServiceImpl struct {
	db *database.DB
	account.AccountRepository
	employee.EmployeeRepository
	project.ProjectRepository
	signer       *token.Signer
	emailService email.EmailService
	baseURL      string
}

func NewProvisioningService(
	db *database.DB,
	accountRepo account.AccountRepository,
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	signer *token.Signer,
	emailService email.EmailService,
	baseURL string,
) account.ProvisioningService {
	return &ProvisioningServiceImpl{
		db:                 db,
		AccountRepository:  accountRepo,
		EmployeeRepository: employeeRepo,
		ProjectRepository:  projectRepo,
		signer:             signer,
		emailService:       emailService,
		baseURL:            baseURL,
	}
}

func (s *ProvisioningServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// CreateAccount implements account.ProvisioningService. The account and its
// employee row are created together; the activation email goes out after the
// transaction commits.
func (s *ProvisioningServiceImpl) CreateAccount(ctx context.Context, req account.CreateAccountRequest) (account.ActivationPreview, error) {
	if err := req.Validate(); err != nil {
		return account.ActivationPreview{}, err
	}

	var (
		acc account.Account
		emp employee.Employee
	)
	err := s.inTx(ctx, func(ctx context.Context) error {
		if req.ProjectID != nil {
			if _, err := s.ProjectRepository.GetByID(ctx, *req.ProjectID); err != nil {
				if errors.Is(err, project.ErrProjectNotFound) {
					return validator.ValidationErrors{{
						Field:   "project_id",
						Message: "project does not exist",
					}}
				}
				return fmt.Errorf("failed to get project: %w", err)
			}
		}

		var err error
		acc, err = s.AccountRepository.Create(ctx, account.Account{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			return err
		}

		emp, err = s.EmployeeRepository.Create(ctx, employee.Employee{
			AccountID: acc.ID,
			JobTitle:  req.JobTitle,
			ProjectID: req.ProjectID,
		})
		return err
	})
	if err != nil {
		return account.ActivationPreview{}, err
	}

	activationToken, err := s.signer.ActivationToken(acc.ID, token.Fingerprint(acc.IsActive, acc.PasswordHash))
	if err != nil {
		return account.ActivationPreview{}, err
	}

	activationLink := fmt.Sprintf("%s/activate/%d/%s", s.baseURL, acc.ID, activationToken)
	if err := s.emailService.SendActivation(acc.Email, acc.Username, activationLink); err != nil {
		// The account exists either way; the operator can re-send the link.
		slog.Error("Failed to send activation email", "account_id", acc.ID, "error", err)
	}

	return account.ActivationPreview{
		AccountID:  acc.ID,
		EmployeeID: emp.ID,
		Username:   acc.Username,
		Email:      acc.Email,
	}, nil
}

// verify loads the account and checks the activation token against its
// current state. An already-activated account fails the fingerprint check,
// which makes every activation link single-use.
func (s *ProvisioningServiceImpl) verify(ctx context.Context, accountID int64, tokenString string) (account.Account, error) {
	acc, err := s.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return account.Account{}, account.ErrActivationInvalid
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	if err := s.signer.VerifyActivation(tokenString, acc.ID, token.Fingerprint(acc.IsActive, acc.PasswordHash)); err != nil {
		return account.Account{}, account.ErrActivationInvalid
	}

	return acc, nil
}

// ValidateActivation implements account.ProvisioningService.
func (s *ProvisioningServiceImpl) ValidateActivation(ctx context.Context, accountID int64, tokenString string) (account.ActivationPreview, error) {
	acc, err := s.verify(ctx, accountID, tokenString)
	if err != nil {
		return account.ActivationPreview{}, err
	}

	preview := account.ActivationPreview{
		AccountID: acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
	}
	if emp, err := s.EmployeeRepository.GetByAccountID(ctx, acc.ID); err == nil {
		preview.EmployeeID = emp.ID
	}
	return preview, nil
}

// Activate implements account.ProvisioningService.
func (s *ProvisioningServiceImpl) Activate(ctx context.Context, accountID int64, tokenString string, req account.SetPasswordRequest) (account.Account, error) {
	acc, err := s.verify(ctx, accountID, tokenString)
	if err != nil {
		return account.Account{}, err
	}

	if err := req.Validate(); err != nil {
		return account.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	activated, err := s.AccountRepository.Activate(ctx, acc.ID, string(hash))
	if err != nil {
		return account.Account{}, err
	}

	return activated, nil
}
