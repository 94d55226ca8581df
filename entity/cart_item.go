package entity

import (
	"gorm.io/gorm"
)

// CartItem is one line of the cart. Repeated adds of the same product make
// distinct lines; the line id, not the product id, addresses a line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // price snapshot at add time, display only
	Total     int64  `json:"total"`
	Note      string `json:"note"`
}
