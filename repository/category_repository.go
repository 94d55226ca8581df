package repository

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) ListForRestaurant(restID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("position ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) BelongsToRestaurant(catID, restID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Category{}).
		Where("id = ? AND restaurant_id = ?", catID, restID).
		Count(&cnt).Error
	return cnt > 0, err
}
