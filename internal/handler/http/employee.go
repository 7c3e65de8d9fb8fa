package http

import (
	"encoding/json"
	"net/http"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService     employee.EmployeeService
	provisioningService account.ProvisioningService
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	provisioningService account.ProvisioningService,
) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:     employeeService,
		provisioningService: provisioningService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Employee not found")
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler. Provisions the inactive account plus
// its employee row and sends the activation email.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req account.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.provisioningService.CreateAccount(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}
