package response

import "github.com/Guyuepp/vidstream/domain"

type Comment struct {
	ID           int64  `json:"id"`
	VideoID      int64  `json:"video_id"`
	UserID       int64  `json:"user_id"`
	Content      string `json:"content"`
	ParentID     *int64 `json:"parent_id"`
	Level        int    `json:"level"`
	Depth        int    `json:"depth,omitempty"`
	Likes        int64  `json:"likes"`
	RepliesCount int64  `json:"replies_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:           c.ID,
		VideoID:      c.VideoID,
		UserID:       c.UserID,
		Content:      c.Content,
		ParentID:     c.ParentID,
		Level:        c.Level,
		Depth:        c.Depth,
		Likes:        c.Likes,
		RepliesCount: c.Replies,
		CreatedAt:    c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:    c.UpdatedAt.Format(DateTimeFormat),
		User:         NewUserFromDomain(c.User),
	}
}

type CommentPage struct {
	Comments   []Comment `json:"comments"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	MaxLevel   int       `json:"max_level"`
}

func NewCommentPageFromDomain(p *domain.CommentPage) CommentPage {
	comments := make([]Comment, len(p.Items))
	for i := range p.Items {
		comments[i] = NewCommentFromDomain(&p.Items[i])
	}
	return CommentPage{
		Comments:   comments,
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		MaxLevel:   p.MaxLevel,
	}
}

type CommentThread struct {
	Root         Comment   `json:"root"`
	Descendants  []Comment `json:"descendants"`
	RepliesCount int64     `json:"replies_count"`
	MaxDepth     int       `json:"max_depth"`
}

func NewCommentThreadFromDomain(t *domain.CommentThread) CommentThread {
	descendants := make([]Comment, len(t.Descendants))
	for i := range t.Descendants {
		descendants[i] = NewCommentFromDomain(&t.Descendants[i])
	}
	return CommentThread{
		Root:         NewCommentFromDomain(&t.Root),
		Descendants:  descendants,
		RepliesCount: t.Replies,
		MaxDepth:     t.MaxDepth,
	}
}
