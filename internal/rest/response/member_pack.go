package response

import "github.com/Guyuepp/vidstream/domain"

type MemberPack struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Intro string `json:"intro"`
	Price int64  `json:"price"`
	Days  int64  `json:"days"`
}

func NewMemberPackFromDomain(p *domain.MemberPack) MemberPack {
	return MemberPack{
		ID:    p.ID,
		Name:  p.Name,
		Intro: p.Intro,
		Price: p.Price,
		Days:  p.Days,
	}
}
