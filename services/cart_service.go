package services

import (
	"errors"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"gorm.io/gorm"
)

const maxNoteLen = 500

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	RestRepo    *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, RestRepo: rr}
}

type AddToCartIn struct {
	ProductID uint   `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
	Note      string `json:"note"`
	// Replace is the explicit confirmation to drop a cart scoped to another
	// restaurant before adding. Without it, a cross-restaurant add fails and
	// the cart stays untouched.
	Replace bool `json:"replace"`
}

type CartView struct {
	Cart        *entity.Cart `json:"cart"`
	Subtotal    int64        `json:"subtotal"`
	DeliveryFee int64        `json:"deliveryFee"`
	FinalTotal  int64        `json:"finalTotal"`
}

// Get returns the cart with its computed totals. The delivery fee is the
// scoped restaurant's fee, 0 for an empty cart.
func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	view := &CartView{Cart: c}
	for _, it := range c.Items {
		view.Subtotal += it.Total
	}
	if c.RestaurantID != 0 {
		rest, err := s.RestRepo.Get(c.RestaurantID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		view.DeliveryFee = rest.DeliveryFee
	}
	view.FinalTotal = view.Subtotal + view.DeliveryFee
	return view, nil
}

// Add appends a new line. Every add creates a distinct line, even for a
// product already in the cart.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}
	if len(in.Note) > maxNoteLen {
		return apperr.Validation("note too long")
	}

	p, err := s.ProductRepo.GetBasics(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("product not found")
	}
	if err != nil {
		return apperr.Storage(err)
	}
	if !p.Active {
		return apperr.NotFound("product %q is not available", p.Name)
	}

	rest, err := s.RestRepo.Get(p.RestaurantID)
	if err != nil {
		return apperr.Storage(err)
	}
	if !rest.IsActive {
		return apperr.Conflict("restaurant is closed")
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return apperr.Storage(err)
	}

	// Single-restaurant invariant. A cart locked to another restaurant is
	// only replaced on explicit confirmation; otherwise nothing changes.
	if c.RestaurantID != 0 && c.RestaurantID != p.RestaurantID && !in.Replace {
		return apperr.Conflict("cart already holds items from another restaurant")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if c.RestaurantID != 0 && c.RestaurantID != p.RestaurantID {
			if err := s.CartRepo.ClearCart(tx, userID); err != nil {
				return err
			}
			c.RestaurantID = 0
		}
		if c.RestaurantID == 0 {
			if err := s.CartRepo.SetRestaurant(tx, c.ID, p.RestaurantID); err != nil {
				return err
			}
		}
		line := &entity.CartItem{
			ProductID: p.ID,
			Qty:       in.Qty,
			UnitPrice: p.Price,
			Total:     p.Price * int64(in.Qty),
			Note:      in.Note,
		}
		return s.CartRepo.AddLine(tx, c.ID, line)
	})
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// UpdateQty sets a line's quantity; qty <= 0 removes the line.
func (s *CartService) UpdateQty(userID, lineID uint, qty int) error {
	if qty <= 0 {
		return s.RemoveLine(userID, lineID)
	}
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.UpdateQty(tx, userID, lineID, qty)
		return err
	})
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFound("cart line not found")
	}
	return nil
}

func (s *CartService) UpdateNote(userID, lineID uint, note string) error {
	if len(note) > maxNoteLen {
		return apperr.Validation("note too long")
	}
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.UpdateNote(tx, userID, lineID, note)
		return err
	})
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFound("cart line not found")
	}
	return nil
}

func (s *CartService) RemoveLine(userID, lineID uint) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.RemoveLine(tx, userID, lineID)
		return err
	})
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFound("cart line not found")
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}
