package postgresql

import (
	"context"
	"fmt"

	"github.com/trackforge/timetracker-backend/internal/domain/screenshot"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
)

type screenshotRepositoryImpl struct {
	db *database.DB
}

func NewScreenshotRepository(db *database.DB) screenshot.ScreenshotRepository {
	return &screenshotRepositoryImpl{db: db}
}

// Create implements screenshot.ScreenshotRepository.
func (s *screenshotRepositoryImpl) Create(ctx context.Context, newScreenshot screenshot.Screenshot) (screenshot.Screenshot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO screenshots (work_session_id, image_path, captured_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		newScreenshot.WorkSessionID,
		newScreenshot.ImagePath,
		newScreenshot.CapturedAt,
	).Scan(&newScreenshot.ID)

	if err != nil {
		return screenshot.Screenshot{}, fmt.Errorf("failed to create screenshot: %w", err)
	}

	return newScreenshot, nil
}

// ListByWorkSession implements screenshot.ScreenshotRepository.
func (s *screenshotRepositoryImpl) ListByWorkSession(ctx context.Context, workSessionID int64) ([]screenshot.Screenshot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, work_session_id, image_path, captured_at
		FROM screenshots
		WHERE work_session_id = $1
		ORDER BY captured_at
	`

	rows, err := q.Query(ctx, query, workSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenshots: %w", err)
	}
	defer rows.Close()

	var screenshots []screenshot.Screenshot
	for rows.Next() {
		var sc screenshot.Screenshot
		if err := rows.Scan(&sc.ID, &sc.WorkSessionID, &sc.ImagePath, &sc.CapturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan screenshot: %w", err)
		}
		screenshots = append(screenshots, sc)
	}

	return screenshots, rows.Err()
}
