package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService account.AuthService
}

func NewAuthHandler(authService account.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// loginFailure mirrors the login endpoint's failed-attempt body, which
// carries a status field on top of the usual error envelope.
type loginFailure struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req account.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if validator.IsEmpty(req.Username) || validator.IsEmpty(req.Password) {
		response.BadRequest(w, "Username and password required")
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			response.JSON(w, http.StatusUnauthorized, loginFailure{
				Status: "failed",
				Error:  "Invalid credentials",
			})
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
