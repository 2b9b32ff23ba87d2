package gift

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
)

type Service struct {
	giftRepo  domain.GiftRepository
	videoRepo domain.VideoRepository
	userRepo  domain.UserRepository
	seatCache domain.GiftSeatCache
	publisher domain.GiftEventPublisher
}

var _ domain.GiftUsecase = (*Service)(nil)

func NewService(g domain.GiftRepository, v domain.VideoRepository, u domain.UserRepository, seats domain.GiftSeatCache, pub domain.GiftEventPublisher) *Service {
	return &Service{
		giftRepo:  g,
		videoRepo: v,
		userRepo:  u,
		seatCache: seats,
		publisher: pub,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Gift, error) {
	return s.giftRepo.GetByID(ctx, id)
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Gift, error) {
	return s.giftRepo.Fetch(ctx)
}

func (s *Service) Store(ctx context.Context, g *domain.Gift) error {
	if _, err := s.giftRepo.GetByName(ctx, g.Name); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return s.giftRepo.Store(ctx, g)
}

func (s *Service) Update(ctx context.Context, g *domain.Gift) error {
	g.UpdatedAt = time.Now()
	return s.giftRepo.Update(ctx, g)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.giftRepo.Delete(ctx, id)
}

// Send 先占座, 再扣钱, 最后投递消息。任何一步失败都要把前面的动作补偿回来,
// 消息落库和主播入账由消费者进程完成。
func (s *Service) Send(ctx context.Context, senderID, videoID, giftID, count int64) (domain.GiftEvent, error) {
	if count < 1 {
		return domain.GiftEvent{}, domain.ErrBadParamInput
	}

	gift, err := s.giftRepo.GetByID(ctx, giftID)
	if err != nil {
		return domain.GiftEvent{}, err
	}
	// 限量礼物一次只送一个, 否则占座数和礼物数对不上
	if gift.Limited && count != 1 {
		return domain.GiftEvent{}, domain.ErrBadParamInput
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return domain.GiftEvent{}, err
	}

	reserved := false
	if gift.Limited {
		occupancy, err := s.seatCache.Reserve(ctx, videoID, giftID)
		if err != nil {
			return domain.GiftEvent{}, err
		}
		if occupancy > gift.Seats {
			s.releaseSeat(videoID, giftID)
			return domain.GiftEvent{}, domain.ErrConflict
		}
		reserved = true
	}

	coins := gift.Price * count
	if err := s.userRepo.AddCoins(ctx, senderID, -coins); err != nil {
		if reserved {
			s.releaseSeat(videoID, giftID)
		}
		return domain.GiftEvent{}, err
	}

	ev := domain.GiftEvent{
		EventID:    uuid.Must(uuid.NewV4()).String(),
		GiftID:     giftID,
		VideoID:    videoID,
		SenderID:   senderID,
		ReceiverID: video.User.ID,
		Count:      count,
		Coins:      coins,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		// 投递失败, 退钱退座
		if refundErr := s.userRepo.AddCoins(ctx, senderID, coins); refundErr != nil {
			logrus.Errorf("failed to refund %d coins to user %d: %v", coins, senderID, refundErr)
		}
		if reserved {
			s.releaseSeat(videoID, giftID)
		}
		return domain.GiftEvent{}, err
	}

	return ev, nil
}

func (s *Service) FetchRecordsByVideo(ctx context.Context, videoID int64, limit int64) ([]domain.GiftRecord, error) {
	if limit < 1 {
		limit = 20
	}
	return s.giftRepo.FetchRecordsByVideo(ctx, videoID, limit)
}

func (s *Service) releaseSeat(videoID, giftID int64) {
	if err := s.seatCache.Release(context.Background(), videoID, giftID); err != nil {
		logrus.Errorf("failed to release gift seat, video %d gift %d: %v", videoID, giftID, err)
	}
}
