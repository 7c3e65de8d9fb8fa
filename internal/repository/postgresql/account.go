package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// Create implements account.AccountRepository.
func (a *accountRepositoryImpl) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO accounts (username, email, password_hash, is_active)
		VALUES ($1, $2, NULL, FALSE)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, newAccount.Username, newAccount.Email).
		Scan(&newAccount.ID, &newAccount.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.Account{}, account.ErrUsernameTaken
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	newAccount.PasswordHash = nil
	newAccount.IsActive = false
	return newAccount, nil
}

// GetByID implements account.AccountRepository.
func (a *accountRepositoryImpl) GetByID(ctx context.Context, id int64) (account.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, email, password_hash, is_active, created_at
		FROM accounts
		WHERE id = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, id).
		Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.IsActive, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return acc, nil
}

// GetByUsername implements account.AccountRepository.
func (a *accountRepositoryImpl) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, email, password_hash, is_active, created_at
		FROM accounts
		WHERE username = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, username).
		Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.IsActive, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	return acc, nil
}

// Activate implements account.AccountRepository.
func (a *accountRepositoryImpl) Activate(ctx context.Context, id int64, passwordHash string) (account.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE accounts
		SET password_hash = $2, is_active = TRUE
		WHERE id = $1
		RETURNING id, username, email, password_hash, is_active, created_at
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, id, passwordHash).
		Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.IsActive, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to activate account: %w", err)
	}

	return acc, nil
}
