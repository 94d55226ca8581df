package repository

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ListActive is the storefront listing: active restaurants, optional name
// search and category-name filter, newest first.
func (r *RestaurantRepository) ListActive(search, category string, limit, offset int) ([]entity.Restaurant, int64, error) {
	q := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM categories c
			 WHERE c.restaurant_id = restaurants.id
			   AND c.name LIKE ? AND c.deleted_at IS NULL)`, "%"+category+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) ListAll(limit, offset int) ([]entity.Restaurant, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Restaurant
	err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetWithCatalog(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Preload("Products", "active = ?", true).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}
