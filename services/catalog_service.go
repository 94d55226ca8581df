package services

import (
	"errors"
	"strings"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"gorm.io/gorm"
)

// CatalogService manages a restaurant's categories and products.
type CatalogService struct {
	CategoryRepo *repository.CategoryRepository
	ProductRepo  *repository.ProductRepository
	Authz        *Authorizer
}

func NewCatalogService(cr *repository.CategoryRepository, pr *repository.ProductRepository, authz *Authorizer) *CatalogService {
	return &CatalogService{CategoryRepo: cr, ProductRepo: pr, Authz: authz}
}

// ----- Categories -----

type CategoryIn struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

func (s *CatalogService) ListCategories(actor Actor, restID uint) ([]entity.Category, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	out, err := s.CategoryRepo.ListForRestaurant(restID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *CatalogService) CreateCategory(actor Actor, restID uint, in *CategoryIn) (*entity.Category, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	cat := &entity.Category{
		Name:         strings.TrimSpace(in.Name),
		Position:     in.Position,
		RestaurantID: restID,
	}
	if cat.Name == "" {
		return nil, apperr.Validation("category name is required")
	}
	if err := s.CategoryRepo.Create(cat); err != nil {
		return nil, apperr.Storage(err)
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(actor Actor, restID, catID uint, in *CategoryIn) error {
	if err := s.requireCategory(actor, restID, catID); err != nil {
		return err
	}
	updates := map[string]any{"position": in.Position}
	if name := strings.TrimSpace(in.Name); name != "" {
		updates["name"] = name
	}
	if err := s.CategoryRepo.Update(catID, updates); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *CatalogService) DeleteCategory(actor Actor, restID, catID uint) error {
	if err := s.requireCategory(actor, restID, catID); err != nil {
		return err
	}
	if err := s.CategoryRepo.Delete(catID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *CatalogService) requireCategory(actor Actor, restID, catID uint) error {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return err
	}
	ok, err := s.CategoryRepo.BelongsToRestaurant(catID, restID)
	if err != nil {
		return apperr.Storage(err)
	}
	if !ok {
		return apperr.NotFound("category not found")
	}
	return nil
}

// ----- Products -----

type ProductIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Picture     string `json:"picture"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

func (s *CatalogService) ListProducts(actor Actor, restID uint) ([]entity.Product, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	out, err := s.ProductRepo.ListForRestaurant(restID, false)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *CatalogService) CreateProduct(actor Actor, restID uint, in *ProductIn) (*entity.Product, error) {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return nil, err
	}
	if in.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}
	ok, err := s.CategoryRepo.BelongsToRestaurant(in.CategoryID, restID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound("category not found")
	}

	p := &entity.Product{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		Picture:      in.Picture,
		Active:       true,
		RestaurantID: restID,
		CategoryID:   in.CategoryID,
	}
	if err := s.ProductRepo.Create(p); err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

type UpdateProductIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Picture     *string `json:"picture"`
	CategoryID  *uint   `json:"categoryId"`
	Active      *bool   `json:"active"`
}

// UpdateProduct edits a product. Price changes only affect future orders:
// order items keep their own snapshot.
func (s *CatalogService) UpdateProduct(actor Actor, restID, productID uint, in *UpdateProductIn) (*entity.Product, error) {
	if err := s.requireProduct(actor, restID, productID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.Validation("price must be positive")
		}
		updates["price"] = *in.Price
	}
	if in.Picture != nil {
		updates["picture"] = *in.Picture
	}
	if in.CategoryID != nil {
		ok, err := s.CategoryRepo.BelongsToRestaurant(*in.CategoryID, restID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		if !ok {
			return nil, apperr.NotFound("category not found")
		}
		updates["category_id"] = *in.CategoryID
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}

	if len(updates) > 0 {
		if err := s.ProductRepo.Update(productID, updates); err != nil {
			return nil, apperr.Storage(err)
		}
	}
	p, err := s.ProductRepo.Get(productID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

// DeleteProduct removes a product from the catalog. Past order items carry
// their own snapshot, so nothing historic changes.
func (s *CatalogService) DeleteProduct(actor Actor, restID, productID uint) error {
	if err := s.requireProduct(actor, restID, productID); err != nil {
		return err
	}
	if err := s.ProductRepo.Delete(productID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *CatalogService) requireProduct(actor Actor, restID, productID uint) error {
	if err := s.Authz.RequireRestaurant(actor, restID); err != nil {
		return err
	}
	ok, err := s.ProductRepo.BelongsToRestaurant(productID, restID)
	if err != nil {
		return apperr.Storage(err)
	}
	if !ok {
		return apperr.NotFound("product not found")
	}
	return nil
}

// ----- Public storefront reads -----

func (s *CatalogService) PublicProducts(restID uint) ([]entity.Product, error) {
	out, err := s.ProductRepo.ListForRestaurant(restID, true)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *CatalogService) PublicProduct(productID uint) (*entity.Product, error) {
	p, err := s.ProductRepo.Get(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !p.Active {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}
