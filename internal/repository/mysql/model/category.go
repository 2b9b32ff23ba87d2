package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	Intro     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Category) TableName() string {
	return "category"
}

func (m *Category) ToDomain() domain.Category {
	return domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Intro:     m.Intro,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewCategoryFromDomain(c *domain.Category) *Category {
	return &Category{
		ID:        c.ID,
		Name:      c.Name,
		Intro:     c.Intro,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
