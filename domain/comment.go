package domain

import (
	"context"
	"time"
)

const (
	// CommentMinLen / CommentMaxLen bound the comment body after sanitization.
	CommentMinLen = 1
	CommentMaxLen = 2000

	// MaxThreadDepth bounds descendant traversal. Threads are user generated,
	// a reply chain could in principle grow without limit.
	MaxThreadDepth = 128
)

// CommentSort enumerates the supported sort keys for top-level listings.
type CommentSort string

const (
	CommentSortCreatedAt CommentSort = "created_at"
	CommentSortLikes     CommentSort = "likes"
)

// SortOrder enumerates sort directions.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Comment is a single node of a video's comment forest. A nil ParentID marks
// a root comment attached directly to the video; Level is 0 for roots and
// parent.Level+1 otherwise. Deleted comments stay in the store so the tree
// keeps its connectivity for descendants.
type Comment struct {
	ID        int64
	VideoID   int64
	UserID    int64
	Content   string
	ParentID  *int64
	Level     int
	Likes     int64
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// User 评论作者信息
	User *User
	// Depth is the depth relative to the queried root, filled during
	// thread resolution. Depth == Level - root.Level.
	Depth int
	// Replies is a read-side annotation: full-subtree descendant count in
	// top-level listings, direct-children count in reply listings.
	Replies int64
}

// IsRoot reports whether the comment is attached directly to a video.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// Visible is the single place deciding whether a comment participates in
// normal reads. Every query path goes through this predicate (or its SQL
// equivalent, the is_deleted = false filter).
func (c *Comment) Visible() bool {
	return !c.IsDeleted
}

// CommentThread is a fully materialized subtree rooted at Root.
type CommentThread struct {
	Root Comment
	// Descendants holds every transitive reply in BFS order, shallow
	// levels first, Depth filled relative to Root.
	Descendants []Comment
	// Replies is the number of non-deleted descendants at any depth.
	Replies int64
	// MaxDepth is the deepest Depth seen under Root (0 when childless).
	MaxDepth int
}

// CommentPage is one window of a paginated comment listing.
type CommentPage struct {
	Items      []Comment
	Total      int64
	Page       int
	TotalPages int
	// MaxLevel is the deepest reply depth encountered under the roots of
	// this page (per call, not global to the video).
	MaxLevel int
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store creates a new comment and backfills ID/CreatedAt/UpdatedAt.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment regardless of its deletion state.
	// Returns ErrNotFound if no such row exists at all.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchRoots returns one page of visible root comments of a video.
	// Ties on the sort key break by id ASC so repeated calls are stable.
	FetchRoots(ctx context.Context, videoID int64, page, size int, sortBy CommentSort, order SortOrder) ([]Comment, error)

	// CountRoots counts the visible root comments of a video.
	CountRoots(ctx context.Context, videoID int64) (int64, error)

	// FetchChildren returns one page of visible direct replies of a
	// comment, newest first.
	FetchChildren(ctx context.Context, parentID int64, page, size int) ([]Comment, error)

	// CountChildren counts the visible direct replies of a comment.
	CountChildren(ctx context.Context, parentID int64) (int64, error)

	// FetchByParentIDs returns all visible direct children of any of the
	// given parents in one query. This is the traversal primitive the
	// per-level BFS is built on.
	FetchByParentIDs(ctx context.Context, parentIDs []int64) ([]Comment, error)

	// CountByParentIDs counts visible direct replies for many parents at
	// once, avoiding an N+1 on listing pages.
	CountByParentIDs(ctx context.Context, parentIDs []int64) (map[int64]int64, error)

	// UpdateContent rewrites the body of a comment and bumps UpdatedAt.
	UpdateContent(ctx context.Context, id int64, content string) error

	// MarkDeleted soft-deletes the given comments in a single statement.
	MarkDeleted(ctx context.Context, ids []int64) error

	// AddLiker atomically adds userID to the comment's liker set and bumps
	// the denormalized counter. Returns false if the user already liked it.
	AddLiker(ctx context.Context, commentID, userID int64) (bool, error)

	// RemoveLiker atomically removes userID from the liker set. Returns
	// false if there was nothing to remove.
	RemoveLiker(ctx context.Context, commentID, userID int64) (bool, error)

	// GetLikers lists the user IDs currently in the liker set.
	GetLikers(ctx context.Context, commentID int64) ([]int64, error)
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create validates and stores a new root comment or reply.
	Create(ctx context.Context, c *Comment) error

	// GetByID returns a visible comment annotated with its likes and
	// full-subtree reply count.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// ListByVideo pages through a video's root comments with the given
	// sort; items carry full-subtree reply counts.
	ListByVideo(ctx context.Context, videoID int64, page, size int, sortBy CommentSort, order SortOrder) (CommentPage, error)

	// ListReplies pages through the direct replies of a comment; items
	// carry their own direct-reply counts and the page reports how deep
	// the thread under the parent goes.
	ListReplies(ctx context.Context, parentID int64, page, size int) (CommentPage, error)

	// ResolveThread materializes the whole subtree under a visible root.
	ResolveThread(ctx context.Context, rootID int64) (CommentThread, error)

	// EditContent replaces the body of the requester's own comment.
	EditContent(ctx context.Context, id, userID int64, content string) (Comment, error)

	// Delete soft-deletes a comment and cascades over every descendant.
	// Only the author or an admin may delete.
	Delete(ctx context.Context, id, requesterID int64) (Comment, error)

	// ToggleLike flips the requester's membership in the liker set and
	// reports which way it went.
	ToggleLike(ctx context.Context, commentID, userID int64) (LikeAction, error)
}
