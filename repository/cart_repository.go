package repository

import (
	"errors"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart; an empty, unscoped cart if none
// exists yet, so the storefront can always render.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) SetRestaurant(tx *gorm.DB, cartID, restID uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("restaurant_id", restID).Error
}

// AddLine always creates a new line. Repeated adds of the same product are
// separate lines, each removable on its own.
func (r *CartRepository) AddLine(tx *gorm.DB, cartID uint, line *entity.CartItem) error {
	line.CartID = cartID
	return tx.Create(line).Error
}

func (r *CartRepository) GetLine(userID, lineID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", lineID, userID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, lineID uint, qty int) (int64, error) {
	res := tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND deleted_at IS NULL
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, lineID, userID)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) UpdateNote(tx *gorm.DB, userID, lineID uint, note string) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", lineID, userID).
		Update("note", note)
	return res.RowsAffected, res.Error
}

// RemoveLine deletes one line and drops the restaurant scope if the cart is
// now empty.
func (r *CartRepository) RemoveLine(tx *gorm.DB, userID, lineID uint) (int64, error) {
	res := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", lineID, userID).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	err := tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (
			SELECT 1 FROM cart_items ci
			 WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
	return res.RowsAffected, err
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("restaurant_id", 0).Error
}
