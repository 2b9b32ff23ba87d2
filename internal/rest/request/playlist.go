package request

import "github.com/Guyuepp/vidstream/domain"

type Playlist struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
	Intro string `json:"intro" binding:"max=255"`
}

func (r *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		Title: r.Title,
		Intro: r.Intro,
	}
}

type PlaylistVideo struct {
	VideoID int64 `json:"video_id" binding:"required,gt=0"`
}
