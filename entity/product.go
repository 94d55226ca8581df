package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // XOF
	Picture     string `json:"picture"`

	Active     bool  `json:"active" gorm:"default:true"`
	LikesCount int64 `json:"likesCount"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
