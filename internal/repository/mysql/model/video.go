package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text"`
	CategoryID  int64     `gorm:"column:category_id;not null;index"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	VideoURL    string    `gorm:"column:video_url;type:varchar(255);not null"`
	CoverURL    string    `gorm:"column:cover_url;type:varchar(255);not null"`
	Views       int64     `gorm:"default:0"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Video) TableName() string {
	return "video"
}

func (m *Video) ToDomain() domain.Video {
	return domain.Video{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		VideoURL:    m.VideoURL,
		CoverURL:    m.CoverURL,
		UpdatedAt:   m.UpdatedAt,
		CreatedAt:   m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		Views: m.Views,
	}
}

func NewVideoFromDomain(v *domain.Video) *Video {
	return &Video{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		CategoryID:  v.CategoryID,
		UserID:      v.User.ID,
		VideoURL:    v.VideoURL,
		CoverURL:    v.CoverURL,
		UpdatedAt:   v.UpdatedAt,
		CreatedAt:   v.CreatedAt,
		Views:       v.Views,
	}
}
