package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/pkg/resp"
	"github.com/fatouibra/Projet-Fatou-sub001/services"

	"github.com/gin-gonic/gin"
)

// ExportController streams the restaurant's orders as a CSV download.
type ExportController struct{ Svc *services.OrderService }

func NewExportController(s *services.OrderService) *ExportController {
	return &ExportController{Svc: s}
}

// GET /partner/restaurants/:id/orders-export?from=&to=
func (h *ExportController) Orders(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}
	orders, err := h.Svc.ExportOrders(currentActor(c), paramUint(c, "id"), from, to)
	if err != nil {
		resp.Error(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"orderNumber", "date", "customer", "phone", "deliveryType", "status", "paymentStatus", "subtotal", "deliveryFee", "total"})
	for _, o := range orders {
		_ = w.Write([]string{
			o.OrderNumber,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.CustomerName,
			o.CustomerPhone,
			o.DeliveryType,
			string(o.Status),
			o.PaymentStatus,
			strconv.FormatInt(o.Subtotal, 10),
			strconv.FormatInt(o.DeliveryFee, 10),
			strconv.FormatInt(o.Total, 10),
		})
	}
	w.Flush()
}
