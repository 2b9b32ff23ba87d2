package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type memberPackRepository struct {
	DB *gorm.DB
}

var _ domain.MemberPackRepository = (*memberPackRepository)(nil)

func NewMemberPackRepository(db *gorm.DB) *memberPackRepository {
	return &memberPackRepository{
		DB: db,
	}
}

func (m *memberPackRepository) GetByID(ctx context.Context, id int64) (domain.MemberPack, error) {
	var pack model.MemberPack
	if err := m.DB.WithContext(ctx).First(&pack, "id = ?", id).Error; err != nil {
		return domain.MemberPack{}, domain.ErrNotFound
	}
	return pack.ToDomain(), nil
}

func (m *memberPackRepository) GetByName(ctx context.Context, name string) (domain.MemberPack, error) {
	var pack model.MemberPack
	if err := m.DB.WithContext(ctx).First(&pack, "name = ?", name).Error; err != nil {
		return domain.MemberPack{}, domain.ErrNotFound
	}
	return pack.ToDomain(), nil
}

func (m *memberPackRepository) Fetch(ctx context.Context) ([]domain.MemberPack, error) {
	var packs []model.MemberPack
	err := m.DB.WithContext(ctx).Order("price").Find(&packs).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.MemberPack, len(packs))
	for i := range packs {
		res[i] = packs[i].ToDomain()
	}
	return res, nil
}

func (m *memberPackRepository) Store(ctx context.Context, p *domain.MemberPack) error {
	packModel := model.NewMemberPackFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&packModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = packModel.ID
	p.CreatedAt = packModel.CreatedAt
	p.UpdatedAt = packModel.UpdatedAt
	return nil
}

func (m *memberPackRepository) Update(ctx context.Context, p *domain.MemberPack) error {
	packModel := model.NewMemberPackFromDomain(p)
	result := m.DB.WithContext(ctx).Model(&packModel).Updates(&packModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *memberPackRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.MemberPack{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
