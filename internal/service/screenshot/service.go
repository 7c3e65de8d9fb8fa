package screenshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trackforge/timetracker-backend/internal/domain/screenshot"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
	"github.com/trackforge/timetracker-backend/internal/pkg/storage"
)

type ScreenshotServiceImpl struct {
	screenshot.ScreenshotRepository
	worksession.WorkSessionRepository
	storage storage.FileStorage
}

func NewScreenshotService(
	screenshotRepo screenshot.ScreenshotRepository,
	sessionRepo worksession.WorkSessionRepository,
	fileStorage storage.FileStorage,
) screenshot.ScreenshotService {
	return &ScreenshotServiceImpl{
		ScreenshotRepository:  screenshotRepo,
		WorkSessionRepository: sessionRepo,
		storage:               fileStorage,
	}
}

// Upload implements screenshot.ScreenshotService.
func (s *ScreenshotServiceImpl) Upload(ctx context.Context, workSessionID int64, file io.Reader, filename string) (screenshot.UploadResponse, error) {
	if file == nil {
		return screenshot.UploadResponse{}, screenshot.ErrFileRequired
	}

	if _, err := s.WorkSessionRepository.GetByID(ctx, workSessionID); err != nil {
		if errors.Is(err, worksession.ErrSessionNotFound) {
			return screenshot.UploadResponse{}, screenshot.ErrInvalidWorkSession
		}
		return screenshot.UploadResponse{}, fmt.Errorf("failed to get work session: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".png"
	}

	contentType := "image/png"
	if ext == ".jpg" || ext == ".jpeg" {
		contentType = "image/jpeg"
	}

	// Stored name is server-generated; the client filename only supplies
	// the extension.
	newFilename := uuid.New().String() + ext
	path := filepath.Join("screenshots", strconv.FormatInt(workSessionID, 10), newFilename)

	storedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return screenshot.UploadResponse{}, fmt.Errorf("failed to store screenshot: %w", err)
	}

	_, err = s.ScreenshotRepository.Create(ctx, screenshot.Screenshot{
		WorkSessionID: workSessionID,
		ImagePath:     storedPath,
		CapturedAt:    time.Now().UTC(),
	})
	if err != nil {
		return screenshot.UploadResponse{}, err
	}

	return screenshot.UploadResponse{
		Message:  "Screenshot uploaded successfully",
		FilePath: storedPath,
	}, nil
}

// ListBySession implements screenshot.ScreenshotService.
func (s *ScreenshotServiceImpl) ListBySession(ctx context.Context, workSessionID int64) ([]screenshot.ScreenshotResponse, error) {
	screenshots, err := s.ScreenshotRepository.ListByWorkSession(ctx, workSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenshots: %w", err)
	}

	return screenshot.NewScreenshotResponses(screenshots), nil
}
