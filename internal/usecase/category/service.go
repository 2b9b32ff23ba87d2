package category

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Service struct {
	categoryRepo domain.CategoryRepository
}

var _ domain.CategoryUsecase = (*Service)(nil)

func NewService(categoryRepo domain.CategoryRepository) *Service {
	return &Service{categoryRepo: categoryRepo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.Fetch(ctx)
}

func (s *Service) Store(ctx context.Context, c *domain.Category) error {
	if _, err := s.categoryRepo.GetByName(ctx, c.Name); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return s.categoryRepo.Store(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *domain.Category) error {
	existed, err := s.categoryRepo.GetByName(ctx, c.Name)
	if err == nil && existed.ID != c.ID {
		return domain.ErrConflict
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	c.UpdatedAt = time.Now()
	return s.categoryRepo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
