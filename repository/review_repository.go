package repository

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListForProduct(productID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Where("product_id = ?", productID).
		Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ReviewRepository) AverageForRestaurant(restID uint) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, row.Cnt, err
}

func (r *ReviewRepository) AverageForProduct(productID uint) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("product_id = ?", productID).
		Scan(&row).Error
	return row.Avg, row.Cnt, err
}
