package models

import (
	"time"

	"github.com/google/uuid"
)

// Preferências por usuário, antes mantidas só no navegador
type UserSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	CompanyName    string `gorm:"size:100" json:"company_name"`
	CompanyEmail   string `gorm:"size:100" json:"company_email"`
	CompanyPhone   string `gorm:"size:20" json:"company_phone"`
	CompanyAddress string `gorm:"size:255" json:"company_address"`

	WorkStart string `gorm:"size:5;default:'09:00'" json:"work_start"`
	WorkEnd   string `gorm:"size:5;default:'18:00'" json:"work_end"`
	Lunch     string `gorm:"size:11" json:"lunch"`

	NotifyEmail bool `gorm:"default:true" json:"notify_email"`
	NotifySMS   bool `gorm:"default:false" json:"notify_sms"`
	NotifyPush  bool `gorm:"default:true" json:"notify_push"`

	AdvanceTimeMin int  `gorm:"default:15" json:"advance_time_min"`
	CancelTimeHrs  int  `gorm:"default:24" json:"cancel_time_hrs"`
	AutoConfirm    bool `gorm:"default:false" json:"auto_confirm"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
