package video

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository"
)

const bloomSeedBatch = 1000

type Service struct {
	videoRepo    domain.VideoRepository
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
	bloomRepo    domain.BloomRepository
}

var _ domain.VideoUsecase = (*Service)(nil)

// NewService will create a new video service object
func NewService(v domain.VideoRepository, u domain.UserRepository, c domain.CategoryRepository, b domain.BloomRepository) *Service {
	return &Service{
		videoRepo:    v,
		userRepo:     u,
		categoryRepo: c,
		bloomRepo:    b,
	}
}

func (a *Service) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Video, nextCursor string, err error) {
	res, err = a.videoRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return
}

func (a *Service) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) (res []domain.Video, nextCursor string, err error) {
	if _, err = a.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, "", err
	}

	res, err = a.videoRepo.FetchByCategory(ctx, categoryID, cursor, num)
	if err != nil {
		return nil, "", err
	}

	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return
}

func (a *Service) GetByID(ctx context.Context, id int64) (res domain.Video, err error) {
	exists, err := a.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says video %d does not exist", id)
		return domain.Video{}, domain.ErrNotFound
	}

	return a.videoRepo.GetByID(ctx, id)
}

func (a *Service) Store(ctx context.Context, v *domain.Video) (err error) {
	if _, err = a.categoryRepo.GetByID(ctx, v.CategoryID); err != nil {
		return err
	}

	err = a.videoRepo.Store(ctx, v)
	if err != nil {
		return
	}

	// 新视频进布隆过滤器, 否则刚发布就会被误判为不存在
	if err := a.bloomRepo.Add(ctx, v.ID); err != nil {
		logrus.Errorf("failed to add video %d to bloom filter: %v", v.ID, err)
	}

	userDetail, err := a.userRepo.GetByID(ctx, v.User.ID)
	if err != nil {
		return
	}
	v.User.Name = userDetail.Name
	v.User.Username = userDetail.Username
	return
}

func (a *Service) Update(ctx context.Context, v *domain.Video) (err error) {
	existed, err := a.videoRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	if existed.User.ID != v.User.ID {
		return domain.ErrForbidden
	}

	v.UpdatedAt = time.Now()
	return a.videoRepo.Update(ctx, v)
}

func (a *Service) Delete(ctx context.Context, id, requesterID int64) (err error) {
	existed, err := a.videoRepo.GetByID(ctx, id)
	if err != nil {
		return
	}

	if existed.User.ID != requesterID {
		requester, err := a.userRepo.GetByID(ctx, requesterID)
		if err != nil || !requester.IsAdmin() {
			return domain.ErrForbidden
		}
	}

	return a.videoRepo.Delete(ctx, id)
}

// InitBloomFilter 启动时分批把全量视频ID灌入布隆过滤器
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64 = 0
	for {
		ids, err := a.videoRepo.FetchIDs(ctx, cursor, bloomSeedBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}

		cursor = ids[len(ids)-1]
		if len(ids) < bloomSeedBatch {
			return nil
		}
	}
}
