package request

import "github.com/Guyuepp/vidstream/domain"

type Category struct {
	Name  string `json:"name" binding:"required,min=1,max=60"`
	Intro string `json:"intro" binding:"max=255"`
}

func (r *Category) ToDomain() domain.Category {
	return domain.Category{
		Name:  r.Name,
		Intro: r.Intro,
	}
}
