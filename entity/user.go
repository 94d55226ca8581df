package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer    = "customer"
	RoleRestaurator = "restaurator"
	RoleAdmin       = "admin"
)

type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"uniqueIndex"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`

	// set for restaurators only
	Restaurant *Restaurant `json:"-" gorm:"foreignKey:UserID"`
}
