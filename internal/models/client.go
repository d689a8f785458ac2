package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente final do profissional, sem login próprio
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
