package repository

import (
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

// FinanceRepository runs the aggregate queries behind dashboards and
// financial summaries. restID = 0 scopes platform-wide.
type FinanceRepository struct{ DB *gorm.DB }

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{DB: db}
}

func (r *FinanceRepository) scoped(restID uint, from, toExcl time.Time) *gorm.DB {
	q := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", from, toExcl)
	if restID != 0 {
		q = q.Where("restaurant_id = ?", restID)
	}
	return q
}

func (r *FinanceRepository) CountByStatuses(restID uint, from, toExcl time.Time, statuses []entity.OrderStatus) (int64, error) {
	var cnt int64
	err := r.scoped(restID, from, toExcl).Where("status IN ?", statuses).Count(&cnt).Error
	return cnt, err
}

func (r *FinanceRepository) SumByStatuses(restID uint, from, toExcl time.Time, statuses []entity.OrderStatus) (int64, error) {
	var row struct{ Sum int64 }
	err := r.scoped(restID, from, toExcl).Where("status IN ?", statuses).
		Select("COALESCE(SUM(total), 0) AS sum").
		Scan(&row).Error
	return row.Sum, err
}

func (r *FinanceRepository) CountAll(restID uint, from, toExcl time.Time) (int64, error) {
	var cnt int64
	err := r.scoped(restID, from, toExcl).Count(&cnt).Error
	return cnt, err
}

type DailyPoint struct {
	Day     string `json:"date"` // YYYY-MM-DD
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"` // DELIVERED totals only
}

// DailySeries groups orders per calendar day. DATE() works on both sqlite
// and postgres.
func (r *FinanceRepository) DailySeries(restID uint, from, toExcl time.Time) ([]DailyPoint, error) {
	var out []DailyPoint
	err := r.scoped(restID, from, toExcl).
		Select(`DATE(created_at) AS day,
			COUNT(*) AS orders,
			COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0) AS revenue`,
			entity.StatusDelivered).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&out).Error
	return out, err
}

type TopProduct struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	Revenue     int64  `json:"revenue"`
}

// TopProducts explodes the items of delivered orders, ranked by quantity.
func (r *FinanceRepository) TopProducts(restID uint, from, toExcl time.Time, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	q := r.DB.Table("order_items AS oi").
		Select(`oi.product_id, oi.product_name,
			SUM(oi.qty) AS quantity, SUM(oi.total) AS revenue`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status = ? AND o.created_at >= ? AND o.created_at < ?",
			entity.StatusDelivered, from, toExcl).
		Where("oi.deleted_at IS NULL AND o.deleted_at IS NULL")
	if restID != 0 {
		q = q.Where("o.restaurant_id = ?", restID)
	}
	var out []TopProduct
	err := q.Group("oi.product_id, oi.product_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// Platform-wide counters for the admin dashboard.

func (r *FinanceRepository) CountUsers() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Count(&cnt).Error
	return cnt, err
}

func (r *FinanceRepository) CountRestaurants() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&cnt).Error
	return cnt, err
}

func (r *FinanceRepository) CountOrdersSince(since time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", since).Count(&cnt).Error
	return cnt, err
}

func (r *FinanceRepository) CountOrders() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}
