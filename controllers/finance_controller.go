package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

type FinanceController struct{ Svc *services.FinanceService }

func NewFinanceController(s *services.FinanceService) *FinanceController {
	return &FinanceController{Svc: s}
}

// GET /partner/restaurants/:id/finance?from=&to=
func (h *FinanceController) Summary(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}
	out, err := h.Svc.Summary(currentActor(c), paramUint(c, "id"), from, to)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurants/:id/finance/top-products?from=&to=&limit=
func (h *FinanceController) TopProducts(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}
	items, err := h.Svc.TopProducts(currentActor(c), paramUint(c, "id"), from, to, queryInt(c, "limit", 0))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/finance?from=&to= — platform-wide
func (h *FinanceController) PlatformSummary(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}
	out, err := h.Svc.Summary(currentActor(c), 0, from, to)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
