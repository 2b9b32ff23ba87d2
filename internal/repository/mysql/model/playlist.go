package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Playlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Intro     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Playlist) TableName() string {
	return "playlist"
}

func (m *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Intro:     m.Intro,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewPlaylistFromDomain(p *domain.Playlist) *Playlist {
	return &Playlist{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Intro:     p.Intro,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type PlaylistItem struct {
	PlaylistID int64     `gorm:"column:playlist_id;not null;uniqueIndex:idx_playlist_video"`
	VideoID    int64     `gorm:"column:video_id;not null;uniqueIndex:idx_playlist_video"`
	Position   int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (PlaylistItem) TableName() string {
	return "playlist_item"
}

func (m *PlaylistItem) ToDomain() domain.PlaylistItem {
	return domain.PlaylistItem{
		PlaylistID: m.PlaylistID,
		VideoID:    m.VideoID,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
	}
}
