package domain

import "context"

// Stats is the administrative counter snapshot.
type Stats struct {
	Users     int64 `json:"users"`
	Videos    int64 `json:"videos"`
	Comments  int64 `json:"comments"`
	Gifts     int64 `json:"gifts"`
	GiftCoins int64 `json:"gift_coins"`
}

// StatsRepository exposes the comment-side counter; the other counters come
// from the feature repositories directly.
type StatsRepository interface {
	// CountComments counts visible comments platform wide.
	CountComments(ctx context.Context) (int64, error)
}

type StatsUsecase interface {
	// Snapshot gathers all counters concurrently.
	Snapshot(ctx context.Context) (Stats, error)
}
