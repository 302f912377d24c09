package order

import (
	"context"

	domain "github.com/protetiq/lab-orders-api/internal/domain/order"
	"github.com/protetiq/lab-orders-api/internal/dto"
	"github.com/protetiq/lab-orders-api/internal/httperr"
)

type AgendaForDate struct {
	repo domain.Repository
}

func NewAgendaForDate(
	repo domain.Repository,
) *AgendaForDate {
	return &AgendaForDate{
		repo: repo,
	}
}

// Execute lista as ordens com entrega prevista na data alvo (YYYY-MM-DD).
// Ordens sem entrega prevista nunca aparecem: a delivery_date delas é NULL.
func (uc *AgendaForDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AgendaItemDTO, error) {

	if !domain.ValidDate(date) {
		return nil, httperr.ErrInvalid("invalid_date", "Data inválida, use YYYY-MM-DD.")
	}

	orders, err := uc.repo.ListByDeliveryDate(ctx, date)
	if err != nil {
		return nil, httperr.ErrService("agenda_unavailable", "Não foi possível carregar a agenda.")
	}

	out := make([]dto.AgendaItemDTO, 0, len(orders))
	for _, o := range orders {
		item := dto.AgendaItemDTO{
			ID:            o.ID,
			Code:          o.Code,
			Status:        o.Status,
			ClientName:    o.Client.Name,
			DentistName:   o.Dentist.Name,
			PatientName:   o.Patient.Name,
			PieceTypeName: o.PieceType.Name,
			TotalValue:    o.TotalValue,
		}
		if o.ScheduledDelivery != nil {
			item.ScheduledDelivery = *o.ScheduledDelivery
		}
		out = append(out, item)
	}

	return out, nil
}
