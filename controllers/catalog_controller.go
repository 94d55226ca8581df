package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

// CatalogController manages a restaurant's categories and products in the
// back office.
type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /partner/restaurants/:id/categories
func (h *CatalogController) Categories(c *gin.Context) {
	items, err := h.Svc.ListCategories(currentActor(c), paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /partner/restaurants/:id/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(currentActor(c), paramUint(c, "id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /partner/restaurants/:id/categories/:cid
func (h *CatalogController) UpdateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateCategory(currentActor(c), paramUint(c, "id"), paramUint(c, "cid"), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /partner/restaurants/:id/categories/:cid
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	if err := h.Svc.DeleteCategory(currentActor(c), paramUint(c, "id"), paramUint(c, "cid")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /partner/restaurants/:id/products
func (h *CatalogController) Products(c *gin.Context) {
	items, err := h.Svc.ListProducts(currentActor(c), paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /partner/restaurants/:id/products
func (h *CatalogController) CreateProduct(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(currentActor(c), paramUint(c, "id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /partner/restaurants/:id/products/:pid
func (h *CatalogController) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.UpdateProduct(currentActor(c), paramUint(c, "id"), paramUint(c, "pid"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /partner/restaurants/:id/products/:pid
func (h *CatalogController) DeleteProduct(c *gin.Context) {
	if err := h.Svc.DeleteProduct(currentActor(c), paramUint(c, "id"), paramUint(c, "pid")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
