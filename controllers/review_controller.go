package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /restaurants/:id/reviews
func (h *ReviewController) ListForRestaurant(c *gin.Context) {
	out, err := h.Svc.ListForRestaurant(paramUint(c, "id"), queryInt(c, "limit", 50))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/:id/reviews
func (h *ReviewController) ListForProduct(c *gin.Context) {
	out, err := h.Svc.ListForProduct(paramUint(c, "id"), queryInt(c, "limit", 50))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
