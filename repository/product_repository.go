package repository

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GetBasics reads the columns checkout needs. Prices always come from here,
// never from the client.
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price, restaurant_id, active").First(&p, id).Error
	return p, err
}

// GetBasicsTx is GetBasics inside the checkout transaction.
func (r *ProductRepository) GetBasicsTx(tx *gorm.DB, id uint) (entity.Product, error) {
	var p entity.Product
	err := tx.Select("id, name, price, restaurant_id, active").First(&p, id).Error
	return p, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListForRestaurant(restID uint, activeOnly bool) ([]entity.Product, error) {
	q := r.DB.Where("restaurant_id = ?", restID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []entity.Product
	err := q.Order("category_id ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Update("active", active)
	return res.RowsAffected, res.Error
}

// Delete soft-deletes a product. Order items keep their own name and price
// snapshot, so history is unaffected.
func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) BelongsToRestaurant(productID, restID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Product{}).
		Where("id = ? AND restaurant_id = ?", productID, restID).
		Count(&cnt).Error
	return cnt > 0, err
}
