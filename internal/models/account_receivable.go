package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountReceivable struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nome denormalizado para listagem sem join com clients
	ClientName string `gorm:"size:100;not null" json:"client_name"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	Installments []Installment `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE;" json:"installments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mantém o nome da tabela do schema original
func (AccountReceivable) TableName() string {
	return "accounts_receivable"
}

type Installment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`

	Number int     `gorm:"not null" json:"number"`
	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`

	DueDate     time.Time  `gorm:"type:date;not null" json:"due_date"`
	PaymentDate *time.Time `gorm:"type:date" json:"payment_date"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
