package billing

import (
	"time"

	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

// ===============================
// Installment Status
// ===============================

type Status string

const (
	StatusPending Status = "pendente"
	StatusPaid    Status = "pago"
	StatusOverdue Status = "vencido"
)

// ===============================
// Domain Actions
// ===============================

// MarkPaid registra o pagamento de uma parcela. Transição única:
// pendente/vencido -> pago. Uma parcela já paga não é repaga nem
// tem a data de pagamento alterada.
func MarkPaid(inst *models.Installment, now time.Time) error {
	if Status(inst.Status) == StatusPaid {
		return httperr.ErrBusiness("installment_already_paid")
	}

	paymentDate := DateOf(now)
	inst.Status = string(StatusPaid)
	inst.PaymentDate = &paymentDate
	return nil
}

// IsOverdue indica se uma parcela pendente passou do vencimento.
func IsOverdue(inst *models.Installment, today time.Time) bool {
	return Status(inst.Status) == StatusPending &&
		inst.DueDate.Before(DateOf(today))
}
