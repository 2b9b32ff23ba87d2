package response

import "github.com/Guyuepp/vidstream/domain"

type PlaylistItem struct {
	VideoID  int64 `json:"video_id"`
	Position int64 `json:"position"`
}

type Playlist struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Title     string         `json:"title"`
	Intro     string         `json:"intro"`
	CreatedAt string         `json:"created_at"`
	Items     []PlaylistItem `json:"items,omitempty"`
}

func NewPlaylistFromDomain(p *domain.Playlist) Playlist {
	items := make([]PlaylistItem, len(p.Items))
	for i := range p.Items {
		items[i] = PlaylistItem{
			VideoID:  p.Items[i].VideoID,
			Position: p.Items[i].Position,
		}
	}
	return Playlist{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Intro:     p.Intro,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		Items:     items,
	}
}
