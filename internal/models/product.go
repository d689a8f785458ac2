package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name          string  `gorm:"size:100;not null" json:"name"`
	Description   string  `gorm:"size:255" json:"description"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int     `gorm:"default:0" json:"stock_quantity"`
	Active        bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
