package http

import (
	"net/http"
	"strconv"

	"github.com/trackforge/timetracker-backend/internal/domain/screenshot"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
)

type ScreenshotHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type screenshotHandlerImpl struct {
	screenshotService screenshot.ScreenshotService
}

func NewScreenshotHandler(screenshotService screenshot.ScreenshotService) ScreenshotHandler {
	return &screenshotHandlerImpl{screenshotService: screenshotService}
}

// Upload implements ScreenshotHandler.
func (h *screenshotHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data")
		return
	}

	workSessionID, err := strconv.ParseInt(r.FormValue("work_session"), 10, 64)
	if err != nil {
		response.NotFound(w, "Invalid work session ID")
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Screenshot image is required")
			return
		}
		response.BadRequest(w, "Invalid file upload")
		return
	}
	defer file.Close()

	result, err := h.screenshotService.Upload(r.Context(), workSessionID, file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// List implements ScreenshotHandler.
func (h *screenshotHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionID")
	if !ok {
		// Unknown sessions yield an empty list, matching the permissive
		// read path.
		response.Success(w, []screenshot.ScreenshotResponse{})
		return
	}

	results, err := h.screenshotService.ListBySession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
