package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Finance *services.FinanceService
	Rest    *services.RestaurantService
}

func NewAdminController(fin *services.FinanceService, rest *services.RestaurantService) *AdminController {
	return &AdminController{Finance: fin, Rest: rest}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	out, err := h.Finance.Dashboard(currentActor(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/restaurants
func (h *AdminController) Restaurants(c *gin.Context) {
	out, err := h.Rest.ListAll(currentActor(c), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/restaurants
func (h *AdminController) CreateRestaurant(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Rest.Create(currentActor(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /admin/restaurants/:id/active
func (h *AdminController) SetRestaurantActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Rest.SetActive(currentActor(c), paramUint(c, "id"), *req.Active); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"active": *req.Active})
}
