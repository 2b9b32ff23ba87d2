package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	VideoID   int64     `gorm:"column:video_id;not null;index:idx_video_root"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  *int64    `gorm:"column:parent_id;index"`
	Level     int       `gorm:"not null;default:0"`
	Likes     int64     `gorm:"not null;default:0"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false;index:idx_video_root"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		Level:     c.Level,
		Likes:     c.Likes,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		Level:     m.Level,
		Likes:     m.Likes,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
