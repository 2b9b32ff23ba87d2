package domain

import (
	"context"
	"time"
)

// Video is representing the Video data struct
type Video struct {
	ID          int64     // Unique identifier for the video
	Title       string    // Video title
	Description string    // Video description
	CategoryID  int64     // Owning category
	VideoURL    string    // Playback address
	CoverURL    string    // Cover image address
	User        User      // Uploader information
	UpdatedAt   time.Time // Last update timestamp
	CreatedAt   time.Time // Creation timestamp
	Views       int64     // Number of views
}

// VideoDBRepository defines the database-level contract for video persistence.
type VideoDBRepository interface {
	// Fetch retrieves a paginated list of videos.
	// cursor: for pagination, pass the cursor from the previous page or
	// empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Video, error)

	// FetchByCategory retrieves a paginated list of one category's videos.
	FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]Video, error)

	// GetByID retrieves a single video by its ID.
	// Returns ErrNotFound if the video doesn't exist.
	GetByID(ctx context.Context, id int64) (Video, error)

	// GetByIDs retrieves videos by given IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]Video, error)

	// Store creates a new video in the repository.
	Store(ctx context.Context, v *Video) error

	// Update modifies an existing video.
	// Returns ErrNotFound if the video doesn't exist.
	Update(ctx context.Context, v *Video) error

	// Delete removes a video by its ID.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the view count of a video.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// FetchIDs pages over all video IDs, for bloom filter seeding.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// Count returns the total number of videos, for the admin stats.
	Count(ctx context.Context) (int64, error)
}

// VideoRepository is the coordinating contract the usecases depend on, it
// merges the cache and the database behind one interface.
type VideoRepository interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Video, error)
	FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]Video, error)
	GetByID(ctx context.Context, id int64) (Video, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Video, error)
	Store(ctx context.Context, v *Video) error
	Update(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id int64) error
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// VideoCache caches hot videos and buffers their view counters. Entries
// carry a logical expiry; a logically expired entry is still served while
// the caller rebuilds it in the background.
type VideoCache interface {
	// GetVideo returns the cached video and whether it is logically
	// expired; ErrCacheMiss when absent.
	GetVideo(ctx context.Context, id int64) (Video, bool, error)
	GetVideoByIDs(ctx context.Context, ids []int64) ([]Video, error)
	SetVideo(ctx context.Context, v *Video, ttl time.Duration) error
	BatchSetVideo(ctx context.Context, vs []Video, ttl time.Duration) error

	// DeleteVideo drops the cached video and its buffered counters.
	DeleteVideo(ctx context.Context, id int64) error

	// IncrViews buffers one view; the buffered deltas are flushed to the
	// database by the view sync worker.
	IncrViews(ctx context.Context, id int64) (int64, error)
	FetchAndResetViews(ctx context.Context) (map[int64]int64, error)
}

type VideoUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Video, string, error)
	FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]Video, string, error)
	GetByID(ctx context.Context, id int64) (Video, error)
	Store(ctx context.Context, v *Video) error
	Update(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id, requesterID int64) error
	InitBloomFilter(ctx context.Context) error
}
