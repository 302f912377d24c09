package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/httpresp"
	ucOrder "github.com/protetiq/lab-orders-api/internal/usecase/order"
)

type KPIHandler struct {
	summary *ucOrder.KPISummary
}

func NewKPIHandler(summary *ucOrder.KPISummary) *KPIHandler {
	return &KPIHandler{summary: summary}
}

func (h *KPIHandler) OrderSummary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
