package models

import "time"

// Ordem de serviço do laboratório.
//
// DeliveryDate é a data-calendário da entrega prevista, derivada uma única
// vez na escrita (timezone do laboratório). A agenda filtra por ela em vez
// de reconverter ScheduledDelivery a cada leitura.
type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code   string `gorm:"size:30;not null;uniqueIndex" json:"code"`
	Status string `gorm:"size:20;not null;default:'entrada'" json:"status"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	DentistID uint    `gorm:"not null;index" json:"dentist_id"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"dentist"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient"`

	PieceTypeID uint      `gorm:"not null;index" json:"piece_type_id"`
	PieceType   PieceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"piece_type"`

	ScheduledDelivery *time.Time `json:"scheduled_delivery"`
	DeliveryDate      *string    `gorm:"size:10;index" json:"delivery_date"`

	TotalValue float64 `gorm:"not null" json:"total_value"`
	Notes      string  `gorm:"size:500" json:"notes"`

	// EntryDate alimenta o KPI "hoje"
	EntryDate time.Time `gorm:"not null;index" json:"entry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
