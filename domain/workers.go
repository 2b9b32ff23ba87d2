package domain

import "context"

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "like"
	case Unlike:
		return "unlike"
	default:
		return "unknown"
	}
}

// ViewSyncWorker periodically flushes the buffered view counters from the
// cache into the database.
type ViewSyncWorker interface {
	Start(ctx context.Context)
}
