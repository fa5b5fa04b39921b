package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/reviewdeck/internal/service"
)

// ContentRefreshJob re-ingests the backend's content set on a schedule so the
// dashboard keeps tracking drafts generated while it is open.
type ContentRefreshJob struct {
	s service.SyncService
}

func NewContentRefreshJob(s service.SyncService) *ContentRefreshJob {
	return &ContentRefreshJob{s: s}
}

func (j *ContentRefreshJob) RefreshContent() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := j.s.Refresh(ctx); err != nil {
		slog.Info("scheduled content refresh failed", "error", err)
		return
	}
	slog.Info("scheduled content refresh complete")
}
