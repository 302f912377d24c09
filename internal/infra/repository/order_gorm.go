package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/protetiq/lab-orders-api/internal/domain/order"
	"github.com/protetiq/lab-orders-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// KPI
// --------------------------------------------------

func (r *OrderGormRepository) CountByStatus(
	ctx context.Context,
) (map[domain.Status]int64, error) {

	type row struct {
		Status string
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.Status]int64, len(rows))
	for _, rw := range rows {
		if st, ok := domain.ParseStatus(rw.Status); ok {
			out[st] = rw.Total
		}
	}

	return out, nil
}

func (r *OrderGormRepository) SumTotalValue(
	ctx context.Context,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_value), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *OrderGormRepository) CountEnteredBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("entry_date >= ? AND entry_date <= ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *OrderGormRepository) ListByDeliveryDate(
	ctx context.Context,
	date string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Dentist").
		Preload("Patient").
		Preload("PieceType").
		Where("delivery_date = ?", date).
		Order("scheduled_delivery ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
