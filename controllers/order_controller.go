package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/gin-gonic/gin"
)

// OrderController serves the customer side of orders.
type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	items, err := h.Svc.ListForUser(utils.CurrentUserID(c), queryInt(c, "limit", 50))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	if err := h.Svc.CancelByCustomer(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
