package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	Catalog *services.CatalogService
}

func NewRestaurantController(s *services.RestaurantService, cat *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s, Catalog: cat}
}

// GET /restaurants?q=&category= — public storefront listing
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.ListPublic(c.Query("q"), c.Query("category"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id — storefront page with categories and active products
func (h *RestaurantController) Detail(c *gin.Context) {
	rest, err := h.Svc.GetPublic(paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"restaurant": rest,
		"categories": rest.Categories,
		"products":   rest.Products,
	})
}

// GET /restaurants/:id/products
func (h *RestaurantController) Products(c *gin.Context) {
	items, err := h.Catalog.PublicProducts(paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /products/:id
func (h *RestaurantController) Product(c *gin.Context) {
	p, err := h.Catalog.PublicProduct(paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /partner/restaurants/:id
func (h *RestaurantController) Account(c *gin.Context) {
	rest, err := h.Svc.Get(currentActor(c), paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /partner/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	var req services.UpdateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Update(currentActor(c), paramUint(c, "id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}
