package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

// CommentLike 的联合唯一索引保证同一用户对同一评论至多一条记录
type CommentLike struct {
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_comment_user"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(cl domain.CommentLike) CommentLike {
	return CommentLike{
		CommentID: cl.CommentID,
		UserID:    cl.UserID,
		CreatedAt: cl.CreatedAt,
	}
}
