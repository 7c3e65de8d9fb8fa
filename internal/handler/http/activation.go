package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
	"github.com/trackforge/timetracker-backend/internal/pkg/token"
)

type ActivationHandler interface {
	Show(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
}

type activationHandlerImpl struct {
	provisioningService account.ProvisioningService
	signer              *token.Signer
}

func NewActivationHandler(provisioningService account.ProvisioningService, signer *token.Signer) ActivationHandler {
	return &activationHandlerImpl{
		provisioningService: provisioningService,
		signer:              signer,
	}
}

// Show implements ActivationHandler. It validates the activation link and
// returns the account details the activation form renders.
func (h *activationHandlerImpl) Show(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "uid")
	if !ok {
		response.BadRequest(w, "Activation was not successful.")
		return
	}
	tokenString := chi.URLParam(r, "token")

	preview, err := h.provisioningService.ValidateActivation(r.Context(), accountID, tokenString)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// Activate implements ActivationHandler. On success it sets the session
// cookie so the freshly activated account is signed in.
func (h *activationHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "uid")
	if !ok {
		response.BadRequest(w, "Activation was not successful.")
		return
	}
	tokenString := chi.URLParam(r, "token")

	var req account.SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	activated, err := h.provisioningService.Activate(r.Context(), accountID, tokenString, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sessionToken, expiresAt, err := h.signer.SessionToken(activated.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	http.SetCookie(w, h.signer.SessionCookie(sessionToken, expiresAt))

	response.Success(w, map[string]string{
		"status":   "success",
		"username": activated.Username,
	})
}
