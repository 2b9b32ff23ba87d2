package request

import "github.com/Guyuepp/vidstream/domain"

type Video struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=5000"`
	CategoryID  int64  `json:"category_id" binding:"required,gt=0"`
	VideoURL    string `json:"video_url" binding:"required,url"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url"`
}

// ToDomain: Request -> Domain
func (r *Video) ToDomain() domain.Video {
	return domain.Video{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		VideoURL:    r.VideoURL,
		CoverURL:    r.CoverURL,
	}
}
