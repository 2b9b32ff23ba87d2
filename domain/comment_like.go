package domain

import "time"

// CommentLike is representing one membership of the liker set of a comment.
// The (CommentID, UserID) pair is unique, a user appears at most once.
type CommentLike struct {
	CommentID int64
	UserID    int64
	CreatedAt time.Time
}
