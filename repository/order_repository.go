package repository

import (
	"strings"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	RestaurantID uint               `json:"restaurantId"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, restaurant_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type RestaurantOrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	CustomerName string             `json:"customerName"`
	DeliveryType string             `json:"deliveryType"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]RestaurantOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []RestaurantOrderSummary
	err := q.
		Select("id, order_number, customer_name, delivery_type, total, status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// ListOrdersForExport returns full rows for the CSV download, oldest first.
func (r *OrderRepository) ListOrdersForExport(restID uint, from, toExcl time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restID, from, toExcl).
		Order("id ASC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard is a compare-and-set: the row moves from → to only if it
// still holds from. Zero rows affected means a lost race or an illegal call.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdatePaymentStatusGuard flips payment status unless the order was cancelled.
func (r *OrderRepository) UpdatePaymentStatusGuard(tx *gorm.DB, orderID uint, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status <> ?", orderID, entity.StatusCancelled).
		Update("payment_status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) OrderNumberExists(num string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("order_number = ?", num).Count(&cnt).Error
	return cnt > 0, err
}

// NormalizePaymentMethod maps loose client spellings onto the stored keys.
func NormalizePaymentMethod(key string) string {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "cash", "cod", "cash_on_delivery", "cash-on-delivery", "cash on delivery":
		return entity.PayCash
	case "wave":
		return entity.PayWave
	case "om", "orange", "orange_money", "orange-money", "orange money":
		return entity.PayOrangeMoney
	default:
		return strings.ToUpper(strings.TrimSpace(key))
	}
}
