package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/vidstream/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	videoRepo domain.VideoDBRepository
	statsRepo domain.StatsRepository
	giftRepo  domain.GiftRepository
}

var _ domain.StatsUsecase = (*Service)(nil)

func NewService(u domain.UserRepository, v domain.VideoDBRepository, st domain.StatsRepository, g domain.GiftRepository) *Service {
	return &Service{
		userRepo:  u,
		videoRepo: v,
		statsRepo: st,
		giftRepo:  g,
	}
}

// Snapshot 并发收集各项计数, 任一失败则整体失败
func (s *Service) Snapshot(ctx context.Context) (domain.Stats, error) {
	var res domain.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Users, err = s.userRepo.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		res.Videos, err = s.videoRepo.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		res.Comments, err = s.statsRepo.CountComments(ctx)
		return
	})
	g.Go(func() (err error) {
		res.Gifts, err = s.giftRepo.CountRecords(ctx)
		return
	})
	g.Go(func() (err error) {
		res.GiftCoins, err = s.giftRepo.SumRecordCoins(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}
	return res, nil
}
