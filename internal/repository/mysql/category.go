package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/repository/mysql/model"
)

type categoryRepository struct {
	DB *gorm.DB
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{
		DB: db,
	}
}

func (m *categoryRepository) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	var category model.Category
	if err := m.DB.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return domain.Category{}, domain.ErrNotFound
	}
	return category.ToDomain(), nil
}

func (m *categoryRepository) GetByName(ctx context.Context, name string) (domain.Category, error) {
	var category model.Category
	if err := m.DB.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		return domain.Category{}, domain.ErrNotFound
	}
	return category.ToDomain(), nil
}

func (m *categoryRepository) Fetch(ctx context.Context) ([]domain.Category, error) {
	var categories []model.Category
	err := m.DB.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Category, len(categories))
	for i := range categories {
		res[i] = categories[i].ToDomain()
	}
	return res, nil
}

func (m *categoryRepository) Store(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := m.DB.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return result.Error
	}
	c.ID = categoryModel.ID
	c.CreatedAt = categoryModel.CreatedAt
	c.UpdatedAt = categoryModel.UpdatedAt
	return nil
}

func (m *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := m.DB.WithContext(ctx).Model(&categoryModel).Updates(&categoryModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
