package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type MemberPack struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	Intro     string    `gorm:"type:varchar(255)"`
	Price     int64     `gorm:"not null"`
	Days      int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (MemberPack) TableName() string {
	return "member_pack"
}

func (m *MemberPack) ToDomain() domain.MemberPack {
	return domain.MemberPack{
		ID:        m.ID,
		Name:      m.Name,
		Intro:     m.Intro,
		Price:     m.Price,
		Days:      m.Days,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewMemberPackFromDomain(p *domain.MemberPack) *MemberPack {
	return &MemberPack{
		ID:        p.ID,
		Name:      p.Name,
		Intro:     p.Intro,
		Price:     p.Price,
		Days:      p.Days,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
