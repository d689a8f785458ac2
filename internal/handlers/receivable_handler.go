package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/domain/billing"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/httpresp"
	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/payments"
	ucReceivable "github.com/beautybook/beautybook-api/internal/usecase/receivable"
)

// ======================================================
// HANDLER
// ======================================================

type ReceivableHandler struct {
	db          *gorm.DB
	repo        billing.Repository
	createUC    *ucReceivable.CreateAccount
	markPaidUC  *ucReceivable.MarkInstallmentPaid
	mercadopago *payments.MercadoPago
}

func NewReceivableHandler(
	db *gorm.DB,
	repo billing.Repository,
	createUC *ucReceivable.CreateAccount,
	markPaidUC *ucReceivable.MarkInstallmentPaid,
	mercadopago *payments.MercadoPago,
) *ReceivableHandler {
	return &ReceivableHandler{
		db:          db,
		repo:        repo,
		createUC:    createUC,
		markPaidUC:  markPaidUC,
		mercadopago: mercadopago,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAccountRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	TotalAmount float64   `json:"total_amount" binding:"required"`

	Installments int    `json:"installments"`
	FirstDueDate string `json:"first_due_date"`
	IntervalDays int    `json:"interval_days"`
}

type UpdateAccountRequest struct {
	Title       *string  `json:"title,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ReceivableHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	accounts, err := h.repo.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_accounts", "Erro ao listar contas.")
		return
	}

	httpresp.List(c, accounts)
}

// ======================================================
// CREATE
// ======================================================

func (h *ReceivableHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	acc, err := h.createUC.Execute(c.Request.Context(), ucReceivable.CreateAccountInput{
		UserID:       userID,
		ClientID:     req.ClientID,
		Title:        req.Title,
		TotalAmount:  req.TotalAmount,
		Installments: req.Installments,
		FirstDueDate: req.FirstDueDate,
		IntervalDays: req.IntervalDays,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_account", "Erro ao criar conta.")
		return
	}

	c.JSON(http.StatusCreated, acc)
}

// ======================================================
// UPDATE (somente o cabeçalho, nunca cascateia parcelas)
// ======================================================

func (h *ReceivableHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	acc, err := h.repo.GetAccount(c.Request.Context(), userID, id)
	if err != nil {
		httperr.NotFound(c, "account_not_found", "Conta não encontrada.")
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Title != nil {
		acc.Title = *req.Title
	}
	if req.TotalAmount != nil {
		acc.TotalAmount = *req.TotalAmount
	}

	if err := h.repo.UpdateAccount(c.Request.Context(), acc); err != nil {
		httperr.Internal(c, "failed_to_update_account", "Erro ao atualizar conta.")
		return
	}

	// Releitura após a mutação
	fresh, err := h.repo.GetAccount(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_account", "Erro ao carregar conta.")
		return
	}

	c.JSON(http.StatusOK, fresh)
}

// ======================================================
// DELETE (hard delete; parcelas caem por cascade)
// ======================================================

func (h *ReceivableHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.repo.DeleteAccount(c.Request.Context(), userID, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "account_not_found", "Conta não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_account", "Erro ao remover conta.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// MARK INSTALLMENT PAID
// ======================================================

func (h *ReceivableHandler) MarkInstallmentPaid(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		httperr.BadRequest(c, "invalid_installment_number", "Número de parcela inválido.")
		return
	}

	acc, err := h.markPaidUC.Execute(c.Request.Context(), userID, id, number)
	if err != nil {
		writeError(c, err, "failed_to_mark_paid", "Erro ao marcar parcela como paga.")
		return
	}

	c.JSON(http.StatusOK, acc)
}

// ======================================================
// PAYMENT LINK (Mercado Pago, opcional)
// ======================================================

func (h *ReceivableHandler) InstallmentPaymentLink(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	if h.mercadopago == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"payments_not_configured", "Integração de pagamento não configurada.")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		httperr.BadRequest(c, "invalid_installment_number", "Número de parcela inválido.")
		return
	}

	acc, err := h.repo.GetAccount(c.Request.Context(), userID, id)
	if err != nil {
		httperr.NotFound(c, "account_not_found", "Conta não encontrada.")
		return
	}

	inst, err := h.repo.GetInstallmentByNumber(c.Request.Context(), userID, id, number)
	if err != nil {
		httperr.NotFound(c, "installment_not_found", "Parcela não encontrada.")
		return
	}

	if billing.Status(inst.Status) == billing.StatusPaid {
		httperr.BadRequest(c, "installment_already_paid", "Parcela já está paga.")
		return
	}

	link, err := h.mercadopago.InstallmentLink(c.Request.Context(), acc, inst)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_link": link})
}
