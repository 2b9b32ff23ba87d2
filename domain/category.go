package domain

import (
	"context"
	"time"
)

// Category groups videos on the browse surface.
type Category struct {
	ID        int64
	Name      string // unique
	Intro     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryRepository interface {
	// GetByID returns ErrNotFound if the category doesn't exist.
	GetByID(ctx context.Context, id int64) (Category, error)

	// GetByName retrieves a category by its unique name.
	GetByName(ctx context.Context, name string) (Category, error)

	// Fetch returns every category; the set is small.
	Fetch(ctx context.Context) ([]Category, error)

	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

type CategoryUsecase interface {
	GetByID(ctx context.Context, id int64) (Category, error)
	Fetch(ctx context.Context) ([]Category, error)

	// Store returns ErrConflict when the name is already taken.
	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}
