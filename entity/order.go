package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `json:"orderNumber" gorm:"uniqueIndex"`

	Status        OrderStatus `json:"status" gorm:"type:varchar(16)"`
	PaymentStatus string      `json:"paymentStatus" gorm:"type:varchar(16)"`
	PaymentMethod string      `json:"paymentMethod" gorm:"type:varchar(16)"`
	DeliveryType  string      `json:"deliveryType" gorm:"type:varchar(16)"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// contact snapshot taken at checkout
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	Note          string `json:"note"`

	OrderItems []OrderItem `json:"items"`
	Reviews    []Review    `json:"-"`
}
