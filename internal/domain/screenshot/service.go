package screenshot

import (
	"context"
	"io"
)

// ScreenshotService defines business logic for screenshot evidence
type ScreenshotService interface {
	// Upload stores the image bytes and records the screenshot against an
	// existing work session
	Upload(ctx context.Context, workSessionID int64, file io.Reader, filename string) (UploadResponse, error)

	// ListBySession lists screenshots for a session, oldest first
	ListBySession(ctx context.Context, workSessionID int64) ([]ScreenshotResponse, error)
}
