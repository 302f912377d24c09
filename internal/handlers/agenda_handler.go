package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/httpresp"
	ucOrder "github.com/protetiq/lab-orders-api/internal/usecase/order"
)

type AgendaHandler struct {
	agenda *ucOrder.AgendaForDate
}

func NewAgendaHandler(agenda *ucOrder.AgendaForDate) *AgendaHandler {
	return &AgendaHandler{agenda: agenda}
}

func (h *AgendaHandler) ListForDate(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	items, err := h.agenda.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, items)
}
