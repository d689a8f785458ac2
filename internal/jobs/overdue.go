package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/domain/billing"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
)

// OverdueSweeper vira parcelas pendentes vencidas para "vencido".
type OverdueSweeper struct {
	db *gorm.DB
}

func NewOverdueSweeper(db *gorm.DB) *OverdueSweeper {
	return &OverdueSweeper{db: db}
}

func (s *OverdueSweeper) Start() {
	c := cron.New()

	// Todo dia às 6h, além de uma varredura no boot
	if _, err := c.AddFunc("0 6 * * *", s.Sweep); err != nil {
		log.Printf("failed to schedule overdue sweep: %v", err)
		return
	}

	s.Sweep()

	c.Start()
	log.Println("Overdue sweeper started")
}

func (s *OverdueSweeper) Sweep() {
	today := timezone.Today()

	res := s.db.Model(&models.Installment{}).
		Where("status = ? AND due_date < ?", string(billing.StatusPending), today).
		Update("status", string(billing.StatusOverdue))

	if res.Error != nil {
		log.Printf("overdue sweep failed: %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		log.Printf("overdue sweep: %d installments marked overdue", res.RowsAffected)
	}
}
