package postgresql

import (
	"context"
	"fmt"

	"github.com/trackforge/timetracker-backend/internal/domain/apitoken"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
)

type apiTokenRepositoryImpl struct {
	db *database.DB
}

func NewAPITokenRepository(db *database.DB) apitoken.APITokenRepository {
	return &apiTokenRepositoryImpl{db: db}
}

// Exists implements apitoken.APITokenRepository.
func (a *apiTokenRepositoryImpl) Exists(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM api_tokens WHERE token = $1)`, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up API token: %w", err)
	}

	return exists, nil
}

// Create implements apitoken.APITokenRepository.
func (a *apiTokenRepositoryImpl) Create(ctx context.Context, newToken apitoken.APIToken) (apitoken.APIToken, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO api_tokens (token, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, newToken.Token, newToken.Description).
		Scan(&newToken.ID, &newToken.CreatedAt)
	if err != nil {
		return apitoken.APIToken{}, fmt.Errorf("failed to create API token: %w", err)
	}

	return newToken, nil
}

// List implements apitoken.APITokenRepository.
func (a *apiTokenRepositoryImpl) List(ctx context.Context) ([]apitoken.APIToken, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, token, description, created_at
		FROM api_tokens
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list API tokens: %w", err)
	}
	defer rows.Close()

	var tokens []apitoken.APIToken
	for rows.Next() {
		var t apitoken.APIToken
		if err := rows.Scan(&t.ID, &t.Token, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan API token: %w", err)
		}
		tokens = append(tokens, t)
	}

	return tokens, rows.Err()
}
