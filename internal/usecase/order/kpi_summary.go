package order

import (
	"context"
	"time"

	domain "github.com/protetiq/lab-orders-api/internal/domain/order"
	"github.com/protetiq/lab-orders-api/internal/dto"
	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/timezone"
)

type KPISummary struct {
	repo domain.Repository
	loc  *time.Location
}

func NewKPISummary(
	repo domain.Repository,
	loc *time.Location,
) *KPISummary {
	return &KPISummary{
		repo: repo,
		loc:  loc,
	}
}

// Execute computa o resumo do dashboard sob demanda: contagem por status,
// soma do valor de TODAS as ordens (independente do status) e quantas
// deram entrada no dia local corrente.
func (uc *KPISummary) Execute(ctx context.Context) (*dto.OrderKPIDTO, error) {

	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, httperr.ErrService("kpi_unavailable", "Não foi possível calcular os indicadores.")
	}

	total, err := uc.repo.SumTotalValue(ctx)
	if err != nil {
		return nil, httperr.ErrService("kpi_unavailable", "Não foi possível calcular os indicadores.")
	}

	start, end := timezone.DayBounds(time.Now().In(uc.loc))
	today, err := uc.repo.CountEnteredBetween(ctx, start, end)
	if err != nil {
		return nil, httperr.ErrService("kpi_unavailable", "Não foi possível calcular os indicadores.")
	}

	// status ausentes ficam em zero
	return &dto.OrderKPIDTO{
		ByStatus: dto.StatusCountsDTO{
			Entrada:    counts[domain.StatusEntrada],
			Producao:   counts[domain.StatusProducao],
			Finalizada: counts[domain.StatusFinalizada],
			Entregue:   counts[domain.StatusEntregue],
		},
		TotalValue: total,
		Today:      today,
	}, nil
}
