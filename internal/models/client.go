package models

import "time"

// Cliente do laboratório (clínica ou consultório que encomenda as peças)
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string  `gorm:"size:100;not null" json:"name"`
	Phone   string  `gorm:"size:20" json:"phone"`
	Email   *string `gorm:"size:100;uniqueIndex" json:"email"`
	Address string  `gorm:"size:200" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
