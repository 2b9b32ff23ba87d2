package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
)

type syncViewsWorker struct {
	videoRepo  domain.VideoDBRepository
	videoCache domain.VideoCache
	interval   time.Duration
}

var _ domain.ViewSyncWorker = (*syncViewsWorker)(nil)

func NewSyncViewsWorker(videoRepo domain.VideoDBRepository, videoCache domain.VideoCache, interval time.Duration) *syncViewsWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &syncViewsWorker{
		videoRepo:  videoRepo,
		videoCache: videoCache,
		interval:   interval,
	}
}

func (s *syncViewsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(ctx)
		case <-ctx.Done():
			logrus.Info("shuting down SyncViewsWorker, flushing remain views...")
			s.flush(context.Background())
			return
		}
	}
}

func (s *syncViewsWorker) flush(ctx context.Context) {
	views, err := s.videoCache.FetchAndResetViews(ctx)
	if err != nil {
		logrus.Errorf("failed to fetch buffered views: %v", err)
		return
	}

	for id, delta := range views {
		if delta == 0 {
			continue
		}
		if err := s.videoRepo.AddViews(ctx, id, delta); err != nil {
			logrus.Errorf("failed to sync views for video %d: %v", id, err)
		}
	}
}
