package screenshot

import "context"

// ScreenshotRepository defines data access methods for screenshots.
type ScreenshotRepository interface {
	Create(ctx context.Context, newScreenshot Screenshot) (Screenshot, error)
	ListByWorkSession(ctx context.Context, workSessionID int64) ([]Screenshot, error)
}
