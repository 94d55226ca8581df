package entity

import (
	"gorm.io/gorm"
)

// Cart mirrors the customer's in-progress selection server-side.
// RestaurantID is the cart's restaurant scope; 0 means the cart is empty
// and not yet bound to any restaurant.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
