package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/beautybook/beautybook-api/internal/audit"
	domain "github.com/beautybook/beautybook-api/internal/domain/appointment"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
	ucReceivable "github.com/beautybook/beautybook-api/internal/usecase/receivable"
)

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	ProductID *uuid.UUID
	Quantity  int
	UnitPrice float64
}

type CreateAppointmentInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID

	ServiceID *uuid.UUID

	Title       string
	Description string

	Date string // "2006-01-02"
	Time string // "15:04"

	DurationMin int

	// Soma de serviços/produtos menos desconto, calculada por quem
	// chama. Não é recalculada nem validada aqui.
	TotalAmount *float64

	Items []ItemInput

	// Quando ligado e o total é positivo, gera uma conta a receber
	// de parcela única vencendo em 30 dias.
	GenerateBilling bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo          domain.Repository
	createAccount *ucReceivable.CreateAccount
	audit         *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	createAccount *ucReceivable.CreateAccount,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:          repo,
		createAccount: createAccount,
		audit:         audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, *models.AccountReceivable, error) {

	// --------------------------------------------------
	// 1. Cliente (escopo do usuário)
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.UserID, in.ClientID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2. Serviço opcional
	// --------------------------------------------------
	duration := in.DurationMin
	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, in.UserID, *in.ServiceID)
		if err != nil {
			return nil, nil, httperr.ErrBusiness("service_not_found")
		}
		if duration == 0 {
			duration = service.DurationMin
		}
	}

	// --------------------------------------------------
	// 3. Data / hora
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Criação do agendamento + itens
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          in.UserID,
		ClientID:        client.ID,
		ServiceID:       in.ServiceID,
		Title:           in.Title,
		Description:     in.Description,
		AppointmentDate: start,
		DurationMin:     duration,
		Status:          string(domain.InitialStatus()),
		TotalAmount:     in.TotalAmount,
	}

	for _, item := range in.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		ap.Items = append(ap.Items, models.AppointmentItem{
			ProductID: item.ProductID,
			Quantity:  qty,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := uc.repo.CreateAppointmentWithItems(ctx, ap); err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// 5. Conta a receber vinculada (parcela única, 30 dias)
	// --------------------------------------------------
	var account *models.AccountReceivable
	if in.GenerateBilling && in.TotalAmount != nil && *in.TotalAmount > 0 {
		account, err = uc.createAccount.Execute(ctx, ucReceivable.CreateAccountInput{
			UserID:       in.UserID,
			ClientID:     client.ID,
			Title:        in.Title,
			TotalAmount:  *in.TotalAmount,
			Installments: 1,
			FirstDueDate: ucReceivable.DueDateFrom(timezone.Now()),
			SkipAudit:    true,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	// --------------------------------------------------
	// 6. Auditoria (evento único, com ou sem cobrança)
	// --------------------------------------------------
	meta := map[string]any{"client_id": client.ID}
	if account != nil {
		meta["account_id"] = account.ID
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: meta,
	})

	// --------------------------------------------------
	// 7. Releitura com associações
	// --------------------------------------------------
	created, err := uc.repo.GetAppointment(ctx, in.UserID, ap.ID)
	if err != nil {
		return nil, nil, err
	}

	return created, account, nil
}
