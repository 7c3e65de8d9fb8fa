package screenshot

import "time"

// Screenshot is one piece of capture evidence tied to a work session.
// Immutable after creation; removed only when its session is deleted.
type Screenshot struct {
	ID            int64
	WorkSessionID int64
	ImagePath     string
	CapturedAt    time.Time
}
