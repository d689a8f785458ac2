package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   *Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`

	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`
	DurationMin     int       `json:"duration_min"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Soma de serviços/produtos menos desconto, calculada pelo cliente
	// na criação. Nunca recalculada aqui.
	TotalAmount *float64 `gorm:"type:decimal(10,2)" json:"total_amount"`

	Items []AppointmentItem `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointment_id"`

	ProductID *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Product   *Product   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product,omitempty"`

	Quantity  int     `gorm:"default:1" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
}
