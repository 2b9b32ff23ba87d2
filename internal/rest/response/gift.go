package response

import "github.com/Guyuepp/vidstream/domain"

type Gift struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Price   int64  `json:"price"`
	Limited bool   `json:"limited"`
	Seats   int64  `json:"seats,omitempty"`
}

func NewGiftFromDomain(g *domain.Gift) Gift {
	return Gift{
		ID:      g.ID,
		Name:    g.Name,
		Icon:    g.Icon,
		Price:   g.Price,
		Limited: g.Limited,
		Seats:   g.Seats,
	}
}

type GiftRecord struct {
	ID         int64  `json:"id"`
	GiftID     int64  `json:"gift_id"`
	VideoID    int64  `json:"video_id"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Count      int64  `json:"count"`
	Coins      int64  `json:"coins"`
	CreatedAt  string `json:"created_at"`
}

func NewGiftRecordFromDomain(r *domain.GiftRecord) GiftRecord {
	return GiftRecord{
		ID:         r.ID,
		GiftID:     r.GiftID,
		VideoID:    r.VideoID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Count:      r.Count,
		Coins:      r.Coins,
		CreatedAt:  r.CreatedAt.Format(DateTimeFormat),
	}
}
