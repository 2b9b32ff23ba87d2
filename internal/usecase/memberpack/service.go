package memberpack

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Service struct {
	packRepo domain.MemberPackRepository
}

var _ domain.MemberPackUsecase = (*Service)(nil)

func NewService(packRepo domain.MemberPackRepository) *Service {
	return &Service{packRepo: packRepo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.MemberPack, error) {
	return s.packRepo.GetByID(ctx, id)
}

func (s *Service) Fetch(ctx context.Context) ([]domain.MemberPack, error) {
	return s.packRepo.Fetch(ctx)
}

func (s *Service) Store(ctx context.Context, p *domain.MemberPack) error {
	if _, err := s.packRepo.GetByName(ctx, p.Name); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return s.packRepo.Store(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.MemberPack) error {
	p.UpdatedAt = time.Now()
	return s.packRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.packRepo.Delete(ctx, id)
}
