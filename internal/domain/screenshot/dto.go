package screenshot

import "time"

type ScreenshotResponse struct {
	ID          int64  `json:"id"`
	WorkSession int64  `json:"work_session"`
	ImagePath   string `json:"image_path"`
	Timestamp   string `json:"timestamp"`
}

func NewScreenshotResponse(s Screenshot) ScreenshotResponse {
	return ScreenshotResponse{
		ID:          s.ID,
		WorkSession: s.WorkSessionID,
		ImagePath:   s.ImagePath,
		Timestamp:   s.CapturedAt.Format(time.RFC3339),
	}
}

func NewScreenshotResponses(screenshots []Screenshot) []ScreenshotResponse {
	responses := make([]ScreenshotResponse, 0, len(screenshots))
	for _, s := range screenshots {
		responses = append(responses, NewScreenshotResponse(s))
	}
	return responses
}

type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}
