package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type playlistRepository struct {
	DB *gorm.DB
}

var _ domain.PlaylistRepository = (*playlistRepository)(nil)

func NewPlaylistRepository(db *gorm.DB) *playlistRepository {
	return &playlistRepository{
		DB: db,
	}
}

func (m *playlistRepository) GetByID(ctx context.Context, id int64) (domain.Playlist, error) {
	var playlist model.Playlist
	if err := m.DB.WithContext(ctx).First(&playlist, "id = ?", id).Error; err != nil {
		return domain.Playlist{}, domain.ErrNotFound
	}
	return playlist.ToDomain(), nil
}

func (m *playlistRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	var playlists []model.Playlist
	err := m.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Playlist, len(playlists))
	for i := range playlists {
		res[i] = playlists[i].ToDomain()
	}
	return res, nil
}

func (m *playlistRepository) Store(ctx context.Context, p *domain.Playlist) error {
	playlistModel := model.NewPlaylistFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&playlistModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = playlistModel.ID
	p.CreatedAt = playlistModel.CreatedAt
	p.UpdatedAt = playlistModel.UpdatedAt
	return nil
}

func (m *playlistRepository) Update(ctx context.Context, p *domain.Playlist) error {
	playlistModel := model.NewPlaylistFromDomain(p)
	result := m.DB.WithContext(ctx).Model(&playlistModel).Updates(&playlistModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *playlistRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Playlist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("playlist_id = ?", id).Delete(&model.PlaylistItem{}).Error
	})
}

func (m *playlistRepository) FetchItems(ctx context.Context, playlistID int64) ([]domain.PlaylistItem, error) {
	var items []model.PlaylistItem
	err := m.DB.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.PlaylistItem, len(items))
	for i := range items {
		res[i] = items[i].ToDomain()
	}
	return res, nil
}

func (m *playlistRepository) AddItem(ctx context.Context, playlistID, videoID int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var position *int64
		err := tx.Model(&model.PlaylistItem{}).
			Where("playlist_id = ?", playlistID).
			Select("max(position)").
			Scan(&position).Error
		if err != nil {
			return err
		}

		item := model.PlaylistItem{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   1,
		}
		if position != nil {
			item.Position = *position + 1
		}

		// 唯一索引兜底，重复视频不落库
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

func (m *playlistRepository) RemoveItem(ctx context.Context, playlistID, videoID int64) error {
	result := m.DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
