package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

// PartnerOrderController is the restaurant back office view of orders.
// Routes carry the restaurant id; authorization happens in the service.
type PartnerOrderController struct{ Svc *services.OrderService }

func NewPartnerOrderController(s *services.OrderService) *PartnerOrderController {
	return &PartnerOrderController{Svc: s}
}

// GET /partner/restaurants/:id/orders?status=&page=&limit=
func (h *PartnerOrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		s := entity.OrderStatus(v)
		if !s.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &s
	}
	out, err := h.Svc.ListForRestaurant(
		currentActor(c), paramUint(c, "id"),
		status, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurants/:id/orders/:oid
func (h *PartnerOrderController) Detail(c *gin.Context) {
	out, err := h.Svc.DetailForRestaurant(currentActor(c), paramUint(c, "id"), paramUint(c, "oid"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /partner/restaurants/:id/orders/:oid/status
func (h *PartnerOrderController) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := h.Svc.SetStatus(currentActor(c), paramUint(c, "oid"), entity.OrderStatus(req.Status))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// PATCH /partner/restaurants/:id/orders/:oid/payment
func (h *PartnerOrderController) SetPayment(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := h.Svc.SetPaymentStatus(currentActor(c), paramUint(c, "oid"), req.PaymentStatus)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"paymentStatus": req.PaymentStatus})
}
