package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// PATCH /cart/items/:id — qty and/or note
func (h *CartController) UpdateLine(c *gin.Context) {
	var req struct {
		Qty  *int    `json:"qty"`
		Note *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Qty == nil && req.Note == nil {
		resp.BadRequest(c, "nothing to update")
		return
	}

	userID := utils.CurrentUserID(c)
	lineID := paramUint(c, "id")
	if req.Qty != nil {
		if err := h.Svc.UpdateQty(userID, lineID, *req.Qty); err != nil {
			resp.Error(c, err)
			return
		}
	}
	// a qty <= 0 removed the line; skip the note write in that case
	if req.Note != nil && (req.Qty == nil || *req.Qty > 0) {
		if err := h.Svc.UpdateNote(userID, lineID, *req.Note); err != nil {
			resp.Error(c, err)
			return
		}
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	if err := h.Svc.RemoveLine(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
