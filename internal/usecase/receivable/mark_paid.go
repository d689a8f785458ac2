package receivable

import (
	"context"

	"github.com/google/uuid"

	"github.com/beautybook/beautybook-api/internal/audit"
	"github.com/beautybook/beautybook-api/internal/domain/billing"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
	"github.com/beautybook/beautybook-api/internal/timezone"
)

type MarkInstallmentPaid struct {
	repo  billing.Repository
	audit *audit.Dispatcher
}

func NewMarkInstallmentPaid(
	repo billing.Repository,
	audit *audit.Dispatcher,
) *MarkInstallmentPaid {
	return &MarkInstallmentPaid{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkInstallmentPaid) Execute(
	ctx context.Context,
	userID uuid.UUID,
	accountID uuid.UUID,
	number int,
) (*models.AccountReceivable, error) {

	inst, err := uc.repo.GetInstallmentByNumber(ctx, userID, accountID, number)
	if err != nil {
		return nil, httperr.ErrBusiness("installment_not_found")
	}

	if err := billing.MarkPaid(inst, timezone.Today()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateInstallment(ctx, inst); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "installment_paid",
		Entity:   "installment",
		EntityID: &inst.ID,
		Metadata: map[string]any{
			"account_id": accountID,
			"number":     number,
		},
	})

	// Releitura da conta com as parcelas após a mutação
	return uc.repo.GetAccount(ctx, userID, accountID)
}
