package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/cache"
	domain "github.com/beautybook/beautybook-api/internal/domain/appointment"
	"github.com/beautybook/beautybook-api/internal/domain/billing"
	"github.com/beautybook/beautybook-api/internal/dto"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
)

const dashboardCacheTTL = 5 * time.Minute

func dashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewReportHandler(db *gorm.DB, cache *cache.Cache) *ReportHandler {
	return &ReportHandler{db: db, cache: cache}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	ctx := c.Request.Context()

	var stats dto.DashboardStats
	if h.cache.GetJSON(ctx, dashboardCacheKey(userID), &stats) {
		c.JSON(http.StatusOK, stats)
		return
	}

	today := timezone.Today()
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	// Agendamentos de hoje
	h.db.Model(&models.Appointment{}).
		Where("user_id = ? AND appointment_date >= ? AND appointment_date < ?",
			userID, today, tomorrow).
		Count(&stats.TodayAppointments)

	// Clientes cadastrados
	h.db.Model(&models.Client{}).
		Where("user_id = ?", userID).
		Count(&stats.ActiveClients)

	// Receita do mês: soma dos totais de agendamentos concluídos
	h.db.Model(&models.Appointment{}).
		Where(
			"user_id = ? AND status = ? AND appointment_date >= ? AND appointment_date < ?",
			userID, string(domain.StatusCompleted), monthStart, monthEnd,
		).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.MonthlyRevenue)

	// Ocupação: confirmados+concluídos sobre o total do mês
	var confirmed, total int64
	h.db.Model(&models.Appointment{}).
		Where(
			"user_id = ? AND status IN ? AND appointment_date >= ? AND appointment_date < ?",
			userID,
			[]string{string(domain.StatusConfirmed), string(domain.StatusCompleted)},
			monthStart, monthEnd,
		).
		Count(&confirmed)

	h.db.Model(&models.Appointment{}).
		Where("user_id = ? AND appointment_date >= ? AND appointment_date < ?",
			userID, monthStart, monthEnd).
		Count(&total)

	if total > 0 {
		stats.OccupancyRate = int(confirmed * 100 / total)
	}

	h.cache.SetJSON(ctx, dashboardCacheKey(userID), stats, dashboardCacheTTL)

	c.JSON(http.StatusOK, stats)
}

// ======================================================
// RECEIVABLES SUMMARY
// ======================================================

func (h *ReportHandler) ReceivablesSummary(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var summary dto.ReceivablesSummary

	type row struct {
		Status string
		Total  float64
		Count  int64
	}

	var rows []row
	if err := h.db.Model(&models.Installment{}).
		Joins("JOIN accounts_receivable ON accounts_receivable.id = installments.account_id").
		Where("accounts_receivable.user_id = ?", userID).
		Select("installments.status AS status, COALESCE(SUM(installments.amount), 0) AS total, COUNT(*) AS count").
		Group("installments.status").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_build_summary", "Erro ao gerar resumo.")
		return
	}

	for _, r := range rows {
		switch billing.Status(r.Status) {
		case billing.StatusPending:
			summary.PendingAmount = r.Total
			summary.PendingCount = r.Count
		case billing.StatusOverdue:
			summary.OverdueAmount = r.Total
			summary.OverdueCount = r.Count
		case billing.StatusPaid:
			summary.PaidAmount = r.Total
			summary.PaidCount = r.Count
		}
	}

	c.JSON(http.StatusOK, summary)
}
