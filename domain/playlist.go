package domain

import (
	"context"
	"time"
)

// Playlist is a user-curated, position-ordered list of videos.
type Playlist struct {
	ID        int64
	UserID    int64
	Title     string
	Intro     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Items 播放列表中的视频，按 Position 升序
	Items []PlaylistItem
}

// PlaylistItem pins one video at one position of a playlist.
// The (PlaylistID, VideoID) pair is unique.
type PlaylistItem struct {
	PlaylistID int64
	VideoID    int64
	Position   int64
	CreatedAt  time.Time
}

type PlaylistRepository interface {
	GetByID(ctx context.Context, id int64) (Playlist, error)
	FetchByUser(ctx context.Context, userID int64) ([]Playlist, error)
	Store(ctx context.Context, p *Playlist) error
	Update(ctx context.Context, p *Playlist) error
	Delete(ctx context.Context, id int64) error

	// FetchItems lists a playlist's items ordered by position.
	FetchItems(ctx context.Context, playlistID int64) ([]PlaylistItem, error)

	// AddItem appends a video at the tail; ErrConflict when already present.
	AddItem(ctx context.Context, playlistID, videoID int64) error
	RemoveItem(ctx context.Context, playlistID, videoID int64) error
}

type PlaylistUsecase interface {
	// GetByID returns the playlist with its items materialized.
	GetByID(ctx context.Context, id int64) (Playlist, error)
	FetchByUser(ctx context.Context, userID int64) ([]Playlist, error)
	Store(ctx context.Context, p *Playlist) error

	// Update / Delete / AddVideo / RemoveVideo are owner-only.
	Update(ctx context.Context, p *Playlist, requesterID int64) error
	Delete(ctx context.Context, id, requesterID int64) error
	AddVideo(ctx context.Context, playlistID, videoID, requesterID int64) error
	RemoveVideo(ctx context.Context, playlistID, videoID, requesterID int64) error
}
