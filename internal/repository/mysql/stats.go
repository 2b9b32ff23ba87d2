package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type statsRepository struct {
	DB *gorm.DB
}

var _ domain.StatsRepository = (*statsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{
		DB: db,
	}
}

func (m *statsRepository) CountComments(ctx context.Context) (total int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("is_deleted = ?", false).
		Count(&total).Error
	return
}
