package models

import "time"

// Dentista solicitante. CRO é a chave de unicidade quando informado.
type Dentist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	CRO    *string `gorm:"size:20;uniqueIndex" json:"cro"`
	Phone  string  `gorm:"size:20" json:"phone"`
	Email  string  `gorm:"size:100" json:"email"`
	Clinic string  `gorm:"size:100" json:"clinic"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
