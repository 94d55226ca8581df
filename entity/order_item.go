package entity

import (
	"gorm.io/gorm"
)

// OrderItem carries a price and name snapshot: later product edits must not
// change historic orders.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID   uint    `json:"productId"`
	Product     Product `json:"-"`
	ProductName string  `json:"productName"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`
}
