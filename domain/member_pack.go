package domain

import (
	"context"
	"time"
)

// MemberPack is a purchasable membership package. Payment processing lives
// outside this service; only the catalog is managed here.
type MemberPack struct {
	ID        int64
	Name      string // unique
	Intro     string
	Price     int64 // coins
	Days      int64 // membership duration granted
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MemberPackRepository interface {
	GetByID(ctx context.Context, id int64) (MemberPack, error)
	GetByName(ctx context.Context, name string) (MemberPack, error)
	Fetch(ctx context.Context) ([]MemberPack, error)
	Store(ctx context.Context, p *MemberPack) error
	Update(ctx context.Context, p *MemberPack) error
	Delete(ctx context.Context, id int64) error
}

type MemberPackUsecase interface {
	GetByID(ctx context.Context, id int64) (MemberPack, error)
	Fetch(ctx context.Context) ([]MemberPack, error)
	Store(ctx context.Context, p *MemberPack) error
	Update(ctx context.Context, p *MemberPack) error
	Delete(ctx context.Context, id int64) error
}
