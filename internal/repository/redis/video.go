package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/cache"
)

const (
	KeyVideos          = "video:%d"
	KeyViewsBuffer     = "video:views:buffer"
	KeyViewsProcessing = "video:views:processing"

	// 物理过期设得比逻辑过期长, 留出重建窗口
	physicalExpireFactor = 3
)

type videoCache struct {
	client *redis.Client
}

var _ domain.VideoCache = (*videoCache)(nil)

func NewVideoCache(client *redis.Client) *videoCache {
	return &videoCache{
		client,
	}
}

func (c *videoCache) GetVideo(ctx context.Context, id int64) (domain.Video, bool, error) {
	key := fmt.Sprintf(KeyVideos, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Video{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Video{}, false, err
	}

	var item cache.DataWithLogicalExpire[domain.Video]
	if err = json.Unmarshal(data, &item); err != nil {
		return domain.Video{}, false, err
	}
	return item.Data, item.IsLogicalExpired(), nil
}

func (c *videoCache) GetVideoByIDs(ctx context.Context, ids []int64) ([]domain.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyVideos, id)
	}

	jsonList, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(ids))
	for _, val := range jsonList {
		str, ok := val.(string)
		if !ok {
			continue
		}

		var item cache.DataWithLogicalExpire[domain.Video]
		if err := json.Unmarshal([]byte(str), &item); err != nil {
			continue
		}
		videos = append(videos, item.Data)
	}

	return videos, nil
}

func (c *videoCache) SetVideo(ctx context.Context, v *domain.Video, ttl time.Duration) error {
	key := fmt.Sprintf(KeyVideos, v.ID)
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(*v, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), physicalExpireFactor*ttl).Err()
}

func (c *videoCache) BatchSetVideo(ctx context.Context, vs []domain.Video, ttl time.Duration) error {
	if len(vs) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	var errMarshal error = nil
	queued := 0
	for i := range vs {
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(vs[i], ttl))
		if err != nil {
			logrus.Warnf("failed to marshal video for cache, ID: %d, err: %v", vs[i].ID, err)
			errMarshal = err
			continue
		}
		pipe.Set(ctx, fmt.Sprintf(KeyVideos, vs[i].ID), data, physicalExpireFactor*ttl)
		queued++
	}
	if queued == 0 {
		return errMarshal
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *videoCache) DeleteVideo(ctx context.Context, id int64) error {
	key := fmt.Sprintf(KeyVideos, id)
	err := c.client.Del(ctx, key).Err()
	if err != nil {
		return err
	}
	return c.client.HDel(ctx, KeyViewsBuffer, strconv.FormatInt(id, 10)).Err()
}

func (c *videoCache) IncrViews(ctx context.Context, id int64) (int64, error) {
	return c.client.HIncrBy(ctx, KeyViewsBuffer, strconv.FormatInt(id, 10), 1).Result()
}

// FetchAndResetViews 先 RENAME 再读取, 避免丢失排空期间新增的浏览量
func (c *videoCache) FetchAndResetViews(ctx context.Context) (map[int64]int64, error) {
	result := make(map[int64]int64)
	err := c.client.Rename(ctx, KeyViewsBuffer, KeyViewsProcessing).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	data, err := c.client.HGetAll(ctx, KeyViewsProcessing).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	for idStr, viewsStr := range data {
		id, _ := strconv.ParseInt(idStr, 10, 64)
		views, _ := strconv.ParseInt(viewsStr, 10, 64)
		result[id] = views
	}

	c.client.Del(ctx, KeyViewsProcessing)

	return result, nil
}
