package request

import "github.com/Guyuepp/vidstream/domain"

type MemberPack struct {
	Name  string `json:"name" binding:"required,min=1,max=60"`
	Intro string `json:"intro" binding:"max=255"`
	Price int64  `json:"price" binding:"required,gt=0"`
	Days  int64  `json:"days" binding:"required,gt=0"`
}

func (r *MemberPack) ToDomain() domain.MemberPack {
	return domain.MemberPack{
		Name:  r.Name,
		Intro: r.Intro,
		Price: r.Price,
		Days:  r.Days,
	}
}
