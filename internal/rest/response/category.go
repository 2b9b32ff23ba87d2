package response

import "github.com/Guyuepp/vidstream/domain"

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Intro string `json:"intro"`
}

func NewCategoryFromDomain(c *domain.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Intro: c.Intro,
	}
}
