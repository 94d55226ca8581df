package entity

import (
	"gorm.io/gorm"
)

const (
	LikeTargetRestaurant = "restaurant"
	LikeTargetProduct    = "product"
)

// Like dedupes by (target type, target id, identity). Identity is a prefixed
// key: "phone:", "email:" or "fp:" plus the value, so the three identity
// channels never collide.
type Like struct {
	gorm.Model
	TargetType string `json:"targetType" gorm:"uniqueIndex:idx_like_identity;type:varchar(16)"`
	TargetID   uint   `json:"targetId" gorm:"uniqueIndex:idx_like_identity"`
	Identity   string `json:"-" gorm:"uniqueIndex:idx_like_identity"`
}
