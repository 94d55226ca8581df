package controllers

import (
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

// LikeController is public: likes work for guests via fingerprint as well
// as for signed-in users via phone/email.
type LikeController struct{ Svc *services.LikeService }

func NewLikeController(s *services.LikeService) *LikeController {
	return &LikeController{Svc: s}
}

// POST /likes/toggle
func (h *LikeController) Toggle(c *gin.Context) {
	var req services.ToggleLikeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Toggle(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /likes/mine?fingerprint=
func (h *LikeController) Mine(c *gin.Context) {
	items, err := h.Svc.ListByFingerprint(c.Query("fingerprint"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
