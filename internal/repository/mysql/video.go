package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type videoRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.VideoDBRepository = (*videoRepository)(nil)

// NewVideoDBRepository 创建数据库操作层
func NewVideoDBRepository(db *gorm.DB) *videoRepository {
	return &videoRepository{db}
}

func (m *videoRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Video, err error) {
	var videos []model.Video
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&videos).
		Error
	if err != nil {
		return
	}

	for _, video := range videos {
		res = append(res, video.ToDomain())
	}

	return
}

func (m *videoRepository) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) (res []domain.Video, err error) {
	var videos []model.Video
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("category_id = ? AND created_at > ?", categoryID, decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&videos).
		Error
	if err != nil {
		return
	}

	for _, video := range videos {
		res = append(res, video.ToDomain())
	}

	return
}

func (m *videoRepository) GetByID(ctx context.Context, id int64) (res domain.Video, err error) {
	var video model.Video
	err = m.DB.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = video.ToDomain()
	return
}

func (m *videoRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Video, error) {
	var videos []model.Video
	err := m.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Video, len(videos))
	for i := range videos {
		res[i] = videos[i].ToDomain()
	}
	return res, nil
}

func (m *videoRepository) Store(ctx context.Context, v *domain.Video) (err error) {
	videoModel := model.NewVideoFromDomain(v)
	result := m.DB.WithContext(ctx).Create(&videoModel)
	if result.Error != nil {
		return result.Error
	}
	v.ID = videoModel.ID
	v.CreatedAt = videoModel.CreatedAt
	v.UpdatedAt = videoModel.UpdatedAt
	return
}

func (m *videoRepository) Update(ctx context.Context, v *domain.Video) (err error) {
	videoModel := model.NewVideoFromDomain(v)
	result := m.DB.WithContext(ctx).Model(&videoModel).Updates(&videoModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

func (m *videoRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Video{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *videoRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *videoRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Video{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

func (m *videoRepository) Count(ctx context.Context) (total int64, err error) {
	err = m.DB.WithContext(ctx).Model(&model.Video{}).Count(&total).Error
	return
}
