package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/trackforge/timetracker-backend/internal/domain/apitoken"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
)

// APITokenGate guards the API namespace with static bearer tokens. Any
// request whose path starts with a protected prefix must carry an
// Authorization header whose token exactly matches a stored API token;
// everything else passes through untouched.
type APITokenGate struct {
	tokens            apitoken.APITokenRepository
	protectedPrefixes []string
	exemptPaths       []string
}

func NewAPITokenGate(tokens apitoken.APITokenRepository, protectedPrefixes, exemptPaths []string) *APITokenGate {
	return &APITokenGate{
		tokens:            tokens,
		protectedPrefixes: protectedPrefixes,
		exemptPaths:       exemptPaths,
	}
}

func (g *APITokenGate) protects(path string) bool {
	for _, exempt := range g.exemptPaths {
		if path == exempt || path == exempt+"/" {
			return false
		}
	}
	for _, prefix := range g.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (g *APITokenGate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.protects(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// A missing header yields an empty token, which never matches.
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))

		ok, err := g.tokens.Exists(r.Context(), token)
		if err != nil {
			slog.Error("API token lookup failed", "error", err)
			response.InternalServerError(w, "An unexpected error occurred")
			return
		}
		if !ok {
			response.Forbidden(w, "Invalid API token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
