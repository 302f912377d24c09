package dto

import "time"

type AgendaItemDTO struct {
	ID                uint      `json:"id"`
	Code              string    `json:"code"`
	Status            string    `json:"status"`
	ScheduledDelivery time.Time `json:"scheduled_delivery"`
	ClientName        string    `json:"client_name"`
	DentistName       string    `json:"dentist_name"`
	PatientName       string    `json:"patient_name"`
	PieceTypeName     string    `json:"piece_type_name"`
	TotalValue        float64   `json:"total_value"`
}
