package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Picture     string `json:"picture"`

	// amounts are XOF, no decimals
	DeliveryFee    int64 `json:"deliveryFee"`
	MinOrderAmount int64 `json:"minOrderAmount"`

	IsActive   bool  `json:"isActive" gorm:"default:true"`
	LikesCount int64 `json:"likesCount"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Categories []Category `json:"-"`
	Products   []Product  `json:"-"`
	Orders     []Order    `json:"-"`
	Reviews    []Review   `json:"-"`
}
