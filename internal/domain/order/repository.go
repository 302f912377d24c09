package order

import (
	"context"
	"time"

	"github.com/protetiq/lab-orders-api/internal/models"
)

type Repository interface {
	// -------- KPI --------
	CountByStatus(
		ctx context.Context,
	) (map[Status]int64, error)

	SumTotalValue(
		ctx context.Context,
	) (float64, error)

	CountEnteredBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	// -------- Agenda --------
	ListByDeliveryDate(
		ctx context.Context,
		date string,
	) ([]models.Order, error)
}
