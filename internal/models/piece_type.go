package models

import "time"

// Tipo de peça protética (coroa, ponte, lente...) com preço base de tabela
type PieceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	BasePrice   float64 `gorm:"not null" json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
