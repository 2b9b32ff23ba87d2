package response

import (
	"github.com/Guyuepp/vidstream/domain"
)

type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
	VideoURL    string `json:"video_url"`
	CoverURL    string `json:"cover_url"`
	UserName    string `json:"user_name"`
	UpdatedAt   string `json:"updated_at"`
	CreatedAt   string `json:"created_at"`
	Views       int64  `json:"views"`
}

// NewVideoFromDomain: Domain -> Response
func NewVideoFromDomain(v *domain.Video) Video {
	return Video{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		CategoryID:  v.CategoryID,
		VideoURL:    v.VideoURL,
		CoverURL:    v.CoverURL,
		UserName:    v.User.Name,
		UpdatedAt:   v.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:   v.CreatedAt.Format(DateTimeFormat),
		Views:       v.Views,
	}
}
