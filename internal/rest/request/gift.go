package request

import "github.com/Guyuepp/vidstream/domain"

type Gift struct {
	Name    string `json:"name" binding:"required,min=1,max=60"`
	Icon    string `json:"icon" binding:"omitempty,url"`
	Price   int64  `json:"price" binding:"required,gt=0"`
	Limited bool   `json:"limited"`
	Seats   int64  `json:"seats" binding:"omitempty,gt=0"`
}

func (r *Gift) ToDomain() domain.Gift {
	return domain.Gift{
		Name:    r.Name,
		Icon:    r.Icon,
		Price:   r.Price,
		Limited: r.Limited,
		Seats:   r.Seats,
	}
}

type SendGift struct {
	GiftID int64 `json:"gift_id" binding:"required,gt=0"`
	Count  int64 `json:"count" binding:"omitempty,gt=0"`
}
