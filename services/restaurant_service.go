package services

import (
	"errors"
	"strings"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Authz    *Authorizer
}

func NewRestaurantService(repo *repository.RestaurantRepository, userRepo *repository.UserRepository, authz *Authorizer) *RestaurantService {
	return &RestaurantService{Repo: repo, UserRepo: userRepo, Authz: authz}
}

type RestaurantPage struct {
	Items []entity.Restaurant `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// ListPublic is the storefront listing: active restaurants only.
func (s *RestaurantService) ListPublic(search, category string, page, limit int) (*RestaurantPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, total, err := s.Repo.ListActive(search, category, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &RestaurantPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *RestaurantService) ListAll(actor Actor, page, limit int) (*RestaurantPage, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("forbidden")
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, total, err := s.Repo.ListAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &RestaurantPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// GetPublic returns an active restaurant with its categories and active
// products for the storefront page.
func (s *RestaurantService) GetPublic(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.GetWithCatalog(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("restaurant not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !rest.IsActive {
		return nil, apperr.NotFound("restaurant not found")
	}
	return rest, nil
}

func (s *RestaurantService) Get(actor Actor, id uint) (*entity.Restaurant, error) {
	if err := s.Authz.RequireRestaurant(actor, id); err != nil {
		return nil, err
	}
	rest, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("restaurant not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return rest, nil
}

type CreateRestaurantIn struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Description    string `json:"description"`
	DeliveryFee    int64  `json:"deliveryFee"`
	MinOrderAmount int64  `json:"minOrderAmount"`
	OwnerUserID    uint   `json:"ownerUserId" binding:"required"`
}

// Create registers a restaurant and promotes its owner to restaurator.
// Admin only.
func (s *RestaurantService) Create(actor Actor, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("forbidden")
	}
	if in.DeliveryFee < 0 || in.MinOrderAmount < 0 {
		return nil, apperr.Validation("amounts cannot be negative")
	}

	owner, err := s.UserRepo.FindByID(in.OwnerUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("owner user not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if owner.Role == entity.RoleAdmin {
		return nil, apperr.Validation("an admin cannot own a restaurant")
	}

	rest := &entity.Restaurant{
		Name:           strings.TrimSpace(in.Name),
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		Description:    in.Description,
		DeliveryFee:    in.DeliveryFee,
		MinOrderAmount: in.MinOrderAmount,
		IsActive:       true,
		UserID:         owner.ID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, apperr.Storage(err)
	}
	if owner.Role != entity.RoleRestaurator {
		if err := s.UserRepo.Update(owner.ID, map[string]any{"role": entity.RoleRestaurator}); err != nil {
			return nil, apperr.Storage(err)
		}
	}
	return rest, nil
}

type UpdateRestaurantIn struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	Description    *string `json:"description"`
	Picture        *string `json:"picture"`
	DeliveryFee    *int64  `json:"deliveryFee"`
	MinOrderAmount *int64  `json:"minOrderAmount"`
}

func (s *RestaurantService) Update(actor Actor, id uint, in *UpdateRestaurantIn) (*entity.Restaurant, error) {
	if err := s.Authz.RequireRestaurant(actor, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Picture != nil {
		updates["picture"] = *in.Picture
	}
	if in.DeliveryFee != nil {
		if *in.DeliveryFee < 0 {
			return nil, apperr.Validation("delivery fee cannot be negative")
		}
		updates["delivery_fee"] = *in.DeliveryFee
	}
	if in.MinOrderAmount != nil {
		if *in.MinOrderAmount < 0 {
			return nil, apperr.Validation("minimum order cannot be negative")
		}
		updates["min_order_amount"] = *in.MinOrderAmount
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, apperr.Storage(err)
		}
	}
	rest, err := s.Repo.Get(id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return rest, nil
}

// SetActive toggles a restaurant on the storefront. Admin only.
func (s *RestaurantService) SetActive(actor Actor, id uint, active bool) error {
	if !actor.IsAdmin() {
		return apperr.Forbidden("forbidden")
	}
	affected, err := s.Repo.SetActive(id, active)
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}
