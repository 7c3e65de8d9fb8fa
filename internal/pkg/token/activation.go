package token

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// Signer issues and verifies the signed tokens used by account activation
// links and the session cookies handed out once activation completes.
type Signer struct {
	auth       *jwtauth.JWTAuth
	tokenTTL   time.Duration
	sessionTTL time.Duration
}

func NewSigner(secret string, tokenTTL string, sessionTTL string) (*Signer, error) {
	tokenDur, err := time.ParseDuration(tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid activation token TTL: %w", err)
	}
	sessionDur, err := time.ParseDuration(sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	return &Signer{
		auth:       jwtauth.New("HS256", []byte(secret), nil),
		tokenTTL:   tokenDur,
		sessionTTL: sessionDur,
	}, nil
}

// Fingerprint hashes the parts of the account state that activation changes.
// Activating an account rewrites the active flag and password hash, so a
// token minted before activation can never verify afterwards: one-time use
// without storing the token anywhere.
func Fingerprint(isActive bool, passwordHash *string) string {
	h := sha256.New()
	fmt.Fprintf(h, "active=%t;", isActive)
	if passwordHash != nil {
		h.Write([]byte(*passwordHash))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ActivationToken mints a signed, time-bound token for the activation link.
func (s *Signer) ActivationToken(accountID int64, fingerprint string) (string, error) {
	claims := map[string]interface{}{
		"account_id": strconv.FormatInt(accountID, 10),
		"fp":         fingerprint,
		"type":       "activation",
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode activation token: %w", err)
	}
	return tokenString, nil
}

// VerifyActivation checks signature, expiry, the bound account id, and that
// the account state fingerprint still matches.
func (s *Signer) VerifyActivation(tokenString string, accountID int64, fingerprint string) error {
	tok, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		return fmt.Errorf("activation token rejected: %w", err)
	}

	if typ, ok := tok.Get("type"); !ok || typ != "activation" {
		return fmt.Errorf("activation token rejected: wrong token type")
	}
	if id, ok := tok.Get("account_id"); !ok || id != strconv.FormatInt(accountID, 10) {
		return fmt.Errorf("activation token rejected: account mismatch")
	}
	if fp, ok := tok.Get("fp"); !ok || fp != fingerprint {
		return fmt.Errorf("activation token rejected: account state changed")
	}

	return nil
}

// SessionToken mints the signed token stored in the session cookie after a
// successful activation.
func (s *Signer) SessionToken(accountID int64) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.sessionTTL)
	claims := map[string]interface{}{
		"account_id": strconv.FormatInt(accountID, 10),
		"type":       "session",
		"exp":        expiresAt.Unix(),
	}

	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode session token: %w", err)
	}
	return tokenString, expiresAt, nil
}

func (s *Signer) SessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
