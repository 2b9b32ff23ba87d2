package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/vidstream/domain"
)

const (
	KeyGiftSeats = "gift:seats:%d:%d"
)

type giftSeatCache struct {
	client *redis.Client
}

var _ domain.GiftSeatCache = (*giftSeatCache)(nil)

func NewGiftSeatCache(client *redis.Client) *giftSeatCache {
	return &giftSeatCache{
		client,
	}
}

// Reserve INCR 占座, 返回占用后的名额数, 超卖由调用方比较名额上限后回滚
func (c *giftSeatCache) Reserve(ctx context.Context, videoID, giftID int64) (int64, error) {
	key := fmt.Sprintf(KeyGiftSeats, videoID, giftID)
	return c.client.Incr(ctx, key).Result()
}

func (c *giftSeatCache) Release(ctx context.Context, videoID, giftID int64) error {
	key := fmt.Sprintf(KeyGiftSeats, videoID, giftID)
	return c.client.Decr(ctx, key).Err()
}
