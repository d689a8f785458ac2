package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/cache"
	domain "github.com/beautybook/beautybook-api/internal/domain/appointment"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
	ucAppointment "github.com/beautybook/beautybook-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	createUC     *ucAppointment.CreateAppointment
	changeStatus *ucAppointment.ChangeStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	cache *cache.Cache,
	createUC *ucAppointment.CreateAppointment,
	changeStatus *ucAppointment.ChangeStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		cache:        cache,
		createUC:     createUC,
		changeStatus: changeStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
}

type CreateAppointmentRequest struct {
	ClientID  uuid.UUID  `json:"client_id" binding:"required"`
	ServiceID *uuid.UUID `json:"service_id"`

	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	DurationMin int      `json:"duration_min"`
	TotalAmount *float64 `json:"total_amount"`

	Items []AppointmentItemRequest `json:"items"`

	GenerateBilling bool `json:"generate_billing"`
}

type UpdateAppointmentRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAppointment.CreateAppointmentInput{
		UserID:          userID,
		ClientID:        req.ClientID,
		ServiceID:       req.ServiceID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		DurationMin:     req.DurationMin,
		TotalAmount:     req.TotalAmount,
		GenerateBilling: req.GenerateBilling,
	}

	for _, item := range req.Items {
		in.Items = append(in.Items, ucAppointment.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	ap, account, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.cache.Del(c.Request.Context(), dashboardCacheKey(userID))

	resp := gin.H{"appointment": ap}
	if account != nil {
		resp["account"] = account
	}

	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	q := h.db.
		Preload("Client").
		Preload("Service").
		Preload("Items").
		Where("user_id = ?", userID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where(
			"appointment_date >= ? AND appointment_date < ?",
			date, date.AddDate(0, 0, 1),
		)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Title != nil {
		ap.Title = *req.Title
	}
	if req.Description != nil {
		ap.Description = *req.Description
	}
	if req.Date != nil && req.Time != nil {
		start, err := timezone.ParseDateTime(*req.Date, *req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		ap.AppointmentDate = start
	}
	if req.DurationMin != nil {
		ap.DurationMin = *req.DurationMin
	}
	if req.TotalAmount != nil {
		ap.TotalAmount = req.TotalAmount
	}

	if err := h.db.Omit("Client", "Service", "Items").Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.cache.Del(c.Request.Context(), dashboardCacheKey(userID))

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// STATUS (confirm / complete / cancel)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		userID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		writeError(c, err, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	h.cache.Del(c.Request.Context(), dashboardCacheKey(userID))

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	h.cache.Del(c.Request.Context(), dashboardCacheKey(userID))

	c.Status(http.StatusNoContent)
}
