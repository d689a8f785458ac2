package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`

	WorkStart string `json:"work_start"`
	WorkEnd   string `json:"work_end"`
	Lunch     string `json:"lunch"`

	NotifyEmail bool `json:"notify_email"`
	NotifySMS   bool `json:"notify_sms"`
	NotifyPush  bool `json:"notify_push"`

	AdvanceTimeMin int  `json:"advance_time_min"`
	CancelTimeHrs  int  `json:"cancel_time_hrs"`
	AutoConfirm    bool `json:"auto_confirm"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var settings models.UserSettings
	if err := h.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Usuários antigos sem linha de settings recebem os defaults
			c.JSON(http.StatusOK, models.UserSettings{UserID: userID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Put(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	settings := models.UserSettings{
		UserID:         userID,
		CompanyName:    req.CompanyName,
		CompanyEmail:   req.CompanyEmail,
		CompanyPhone:   req.CompanyPhone,
		CompanyAddress: req.CompanyAddress,
		WorkStart:      req.WorkStart,
		WorkEnd:        req.WorkEnd,
		Lunch:          req.Lunch,
		NotifyEmail:    req.NotifyEmail,
		NotifySMS:      req.NotifySMS,
		NotifyPush:     req.NotifyPush,
		AdvanceTimeMin: req.AdvanceTimeMin,
		CancelTimeHrs:  req.CancelTimeHrs,
		AutoConfirm:    req.AutoConfirm,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_settings"})
		return
	}

	var fresh models.UserSettings
	if err := h.db.Where("user_id = ?", userID).First(&fresh).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	c.JSON(http.StatusOK, fresh)
}
