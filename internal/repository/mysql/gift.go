package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type giftRepository struct {
	DB *gorm.DB
}

var _ domain.GiftRepository = (*giftRepository)(nil)

func NewGiftRepository(db *gorm.DB) *giftRepository {
	return &giftRepository{
		DB: db,
	}
}

func (m *giftRepository) GetByID(ctx context.Context, id int64) (domain.Gift, error) {
	var gift model.Gift
	if err := m.DB.WithContext(ctx).First(&gift, "id = ?", id).Error; err != nil {
		return domain.Gift{}, domain.ErrNotFound
	}
	return gift.ToDomain(), nil
}

func (m *giftRepository) GetByName(ctx context.Context, name string) (domain.Gift, error) {
	var gift model.Gift
	if err := m.DB.WithContext(ctx).First(&gift, "name = ?", name).Error; err != nil {
		return domain.Gift{}, domain.ErrNotFound
	}
	return gift.ToDomain(), nil
}

func (m *giftRepository) Fetch(ctx context.Context) ([]domain.Gift, error) {
	var gifts []model.Gift
	err := m.DB.WithContext(ctx).Order("price").Find(&gifts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Gift, len(gifts))
	for i := range gifts {
		res[i] = gifts[i].ToDomain()
	}
	return res, nil
}

func (m *giftRepository) Store(ctx context.Context, g *domain.Gift) error {
	giftModel := model.NewGiftFromDomain(g)
	result := m.DB.WithContext(ctx).Create(&giftModel)
	if result.Error != nil {
		return result.Error
	}
	g.ID = giftModel.ID
	g.CreatedAt = giftModel.CreatedAt
	g.UpdatedAt = giftModel.UpdatedAt
	return nil
}

func (m *giftRepository) Update(ctx context.Context, g *domain.Gift) error {
	giftModel := model.NewGiftFromDomain(g)
	result := m.DB.WithContext(ctx).Model(&giftModel).Updates(&giftModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *giftRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Gift{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *giftRepository) StoreRecord(ctx context.Context, r *domain.GiftRecord) error {
	recordModel := model.NewGiftRecordFromDomain(r)
	result := m.DB.WithContext(ctx).Create(&recordModel)
	if result.Error != nil {
		return result.Error
	}
	r.ID = recordModel.ID
	r.CreatedAt = recordModel.CreatedAt
	return nil
}

func (m *giftRepository) FetchRecordsByVideo(ctx context.Context, videoID int64, limit int64) ([]domain.GiftRecord, error) {
	var records []model.GiftRecord
	err := m.DB.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at desc, id desc").
		Limit(int(limit)).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.GiftRecord, len(records))
	for i := range records {
		res[i] = records[i].ToDomain()
	}
	return res, nil
}

func (m *giftRepository) CountRecords(ctx context.Context) (total int64, err error) {
	err = m.DB.WithContext(ctx).Model(&model.GiftRecord{}).Count(&total).Error
	return
}

func (m *giftRepository) SumRecordCoins(ctx context.Context) (int64, error) {
	var sum *int64
	err := m.DB.WithContext(ctx).
		Model(&model.GiftRecord{}).
		Select("sum(coins)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
