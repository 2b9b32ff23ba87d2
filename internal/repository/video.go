package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/vidstream/domain"
)

const videoCacheTTL = 10 * time.Minute

// videoRepository 协调层，协调缓存和数据库
type videoRepository struct {
	db            domain.VideoDBRepository
	cache         domain.VideoCache
	userRepo      domain.UserRepository
	rebuildGroup  singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[int64]bool // 正在重建的视频ID
}

var _ domain.VideoRepository = (*videoRepository)(nil)

// NewVideoRepository 创建协调层repository
func NewVideoRepository(db domain.VideoDBRepository, cache domain.VideoCache, userRepo domain.UserRepository) *videoRepository {
	return &videoRepository{
		db:            db,
		cache:         cache,
		userRepo:      userRepo,
		rebuildingMap: make(map[int64]bool),
	}
}

// Fetch 获取视频列表
func (r *videoRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Video, error) {
	videos, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	// 填充上传者信息
	videos, err = r.fillUserDetails(ctx, videos)
	if err != nil {
		return nil, err
	}

	// 异步回填缓存
	go func(data []domain.Video) {
		_ = r.cache.BatchSetVideo(context.Background(), data, videoCacheTTL)
	}(videos)

	return videos, nil
}

// FetchByCategory 获取分类下的视频列表
func (r *videoRepository) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]domain.Video, error) {
	videos, err := r.db.FetchByCategory(ctx, categoryID, cursor, num)
	if err != nil {
		return nil, err
	}
	return r.fillUserDetails(ctx, videos)
}

// GetByID 根据ID获取视频，使用逻辑过期策略避免缓存击穿
func (r *videoRepository) GetByID(ctx context.Context, id int64) (domain.Video, error) {
	// 1. 先从缓存获取
	video, expired, err := r.cache.GetVideo(ctx, id)
	if err == nil {
		// 缓存命中
		if expired {
			go r.rebuildVideoCache(context.Background(), id)
		}

		// 更新浏览量（先增加缓存中的浏览量）
		deltaViews, _ := r.cache.IncrViews(ctx, id)
		video.Views += deltaViews

		return video, nil
	}

	// 2. 缓存未命中，使用singleflight避免缓存击穿
	key := "video:" + strconv.FormatInt(id, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		// 从数据库加载
		v, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// 填充上传者信息
		user, err := r.userRepo.GetByID(ctx, v.User.ID)
		if err != nil {
			return nil, err
		}
		v.User = user

		// 更新缓存（使用逻辑过期）
		_ = r.cache.SetVideo(context.Background(), &v, videoCacheTTL)

		return v, nil
	})

	if err != nil {
		return domain.Video{}, err
	}

	video = result.(domain.Video)

	// 更新浏览量
	deltaViews, _ := r.cache.IncrViews(ctx, id)
	video.Views += deltaViews

	return video, nil
}

// GetByIDs 批量获取视频
func (r *videoRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// 先从缓存批量获取
	cachedVideos, err := r.cache.GetVideoByIDs(ctx, ids)
	if err == nil && len(cachedVideos) == len(ids) {
		// 全部命中
		return cachedVideos, nil
	}

	// 部分未命中，从数据库获取
	videos, err := r.db.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 填充上传者信息
	videos, err = r.fillUserDetails(ctx, videos)
	if err != nil {
		return nil, err
	}

	// 异步更新缓存
	go func(vs []domain.Video) {
		_ = r.cache.BatchSetVideo(context.Background(), vs, videoCacheTTL)
	}(videos)

	return videos, nil
}

// Store 创建视频
func (r *videoRepository) Store(ctx context.Context, v *domain.Video) error {
	return r.db.Store(ctx, v)
}

// Update 更新视频
func (r *videoRepository) Update(ctx context.Context, v *domain.Video) error {
	err := r.db.Update(ctx, v)
	if err != nil {
		return err
	}

	// 异步删除缓存
	go func(id int64) {
		_ = r.cache.DeleteVideo(context.Background(), id)
	}(v.ID)

	return nil
}

// Delete 删除视频
func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	// 异步删除缓存
	go func(id int64) {
		_ = r.cache.DeleteVideo(context.Background(), id)
	}(id)

	return nil
}

// FetchIDs 获取视频ID列表
func (r *videoRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillUserDetails 批量填充上传者详细信息
func (r *videoRepository) fillUserDetails(ctx context.Context, videos []domain.Video) ([]domain.Video, error) {
	if len(videos) == 0 {
		return videos, nil
	}

	// 收集所有不重复的UserID
	userIDs := make([]int64, 0, len(videos))
	existMap := make(map[int64]bool)
	for _, item := range videos {
		if !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}

	// 批量查询用户
	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	// 转成Map方便查找
	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	// 填充回Video
	for i := range videos {
		if u, ok := userMap[videos[i].User.ID]; ok {
			videos[i].User = u
		}
	}

	return videos, nil
}

// rebuildVideoCache 异步重建视频缓存
func (r *videoRepository) rebuildVideoCache(ctx context.Context, id int64) {
	// 检查是否已经在重建中
	r.mu.Lock()
	if r.rebuildingMap[id] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[id] = true
	r.mu.Unlock()

	// 完成后清除标记
	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, id)
		r.mu.Unlock()
	}()

	// 使用singleflight避免并发重建
	key := "rebuild:" + strconv.FormatInt(id, 10)
	_, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		video, err := r.db.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// 视频不存在，删除缓存
				_ = r.cache.DeleteVideo(ctx, id)
			}
			return nil, err
		}

		// 填充上传者信息
		user, err := r.userRepo.GetByID(ctx, video.User.ID)
		if err != nil {
			logrus.Errorf("failed to get user: %v", err)
			return nil, err
		}
		video.User = user

		// 更新缓存
		err = r.cache.SetVideo(ctx, &video, videoCacheTTL)
		if err != nil {
			logrus.Errorf("failed to set video cache: %v", err)
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		logrus.Errorf("rebuildVideoCache failed for id %d: %v", id, err)
	}
}
