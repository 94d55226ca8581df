package entity

import (
	"gorm.io/gorm"
)

// Review targets exactly one of Restaurant or Product and may reference the
// delivered order it came from.
type Review struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID *uint       `json:"restaurantId,omitempty"`
	Restaurant   *Restaurant `json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
