package receivable

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/beautybook/beautybook-api/internal/audit"
	"github.com/beautybook/beautybook-api/internal/domain/billing"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAccountInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID

	Title       string
	TotalAmount float64

	Installments int
	FirstDueDate string // "2006-01-02", opcional
	IntervalDays int

	// Usado pela criação via agendamento, que audita como um
	// evento combinado em vez de dois separados.
	SkipAudit bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAccount struct {
	repo  billing.Repository
	audit *audit.Dispatcher
}

func NewCreateAccount(
	repo billing.Repository,
	audit *audit.Dispatcher,
) *CreateAccount {
	return &CreateAccount{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAccount) Execute(
	ctx context.Context,
	in CreateAccountInput,
) (*models.AccountReceivable, error) {

	// --------------------------------------------------
	// 1. Cliente (escopo do usuário)
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.UserID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2. Primeira data de vencimento
	// --------------------------------------------------
	firstDue := timezone.Today()
	if in.FirstDueDate != "" {
		firstDue, err = timezone.ParseDate(in.FirstDueDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_due_date")
		}
	}

	// --------------------------------------------------
	// 3. Parcelas
	// --------------------------------------------------
	count := in.Installments
	if count == 0 {
		count = 1
	}

	plans, err := billing.BuildSchedule(
		in.TotalAmount,
		count,
		firstDue,
		in.IntervalDays,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Persistência (cabeçalho + parcelas, uma transação)
	// --------------------------------------------------
	acc := &models.AccountReceivable{
		UserID:      in.UserID,
		ClientID:    client.ID,
		ClientName:  client.Name,
		Title:       in.Title,
		TotalAmount: in.TotalAmount,
	}

	for _, p := range plans {
		acc.Installments = append(acc.Installments, models.Installment{
			Number:  p.Number,
			Amount:  p.Amount,
			DueDate: p.DueDate,
			Status:  string(p.Status),
		})
	}

	if err := uc.repo.CreateAccountWithInstallments(ctx, acc); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	if !in.SkipAudit {
		uc.audit.Dispatch(audit.Event{
			UserID:   in.UserID,
			Action:   "account_created",
			Entity:   "account_receivable",
			EntityID: &acc.ID,
			Metadata: map[string]any{
				"installments": count,
				"total_amount": in.TotalAmount,
			},
		})
	}

	// --------------------------------------------------
	// 6. Releitura: resposta sempre vem do banco, nunca do
	//    estado montado em memória
	// --------------------------------------------------
	return uc.repo.GetAccount(ctx, in.UserID, acc.ID)
}

// DueDateFrom calcula o vencimento padrão usado pela criação de
// conta a partir de um agendamento: 30 dias após a referência.
func DueDateFrom(ref time.Time) string {
	return billing.DateOf(ref).
		AddDate(0, 0, billing.DefaultIntervalDays).
		Format("2006-01-02")
}
