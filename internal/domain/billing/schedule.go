package billing

import (
	"math"
	"time"

	"github.com/beautybook/beautybook-api/internal/httperr"
)

const DefaultIntervalDays = 30

// InstallmentPlan descreve uma parcela antes de ser persistida.
type InstallmentPlan struct {
	Number  int
	Amount  float64
	DueDate time.Time
	Status  Status
}

// BuildSchedule divide o total em parcelas iguais com vencimentos
// espaçados por intervalDays a partir de firstDue.
//
// O cálculo é feito em centavos: cada parcela recebe a parte inteira
// da divisão e a última absorve o resto, então a soma das parcelas
// é sempre igual ao total.
func BuildSchedule(
	totalAmount float64,
	count int,
	firstDue time.Time,
	intervalDays int,
) ([]InstallmentPlan, error) {

	if count <= 0 {
		return nil, httperr.ErrBusiness("invalid_installment_count")
	}
	if totalAmount <= 0 {
		return nil, httperr.ErrBusiness("invalid_total_amount")
	}
	if intervalDays <= 0 {
		intervalDays = DefaultIntervalDays
	}

	totalCents := int64(math.Round(totalAmount * 100))
	baseCents := totalCents / int64(count)
	remainder := totalCents - baseCents*int64(count)

	baseDate := DateOf(firstDue)

	plans := make([]InstallmentPlan, 0, count)
	for i := 1; i <= count; i++ {
		cents := baseCents
		if i == count {
			cents += remainder
		}

		plans = append(plans, InstallmentPlan{
			Number:  i,
			Amount:  float64(cents) / 100,
			DueDate: baseDate.AddDate(0, 0, (i-1)*intervalDays),
			Status:  StatusPending,
		})
	}

	return plans, nil
}

// DateOf zera o horário, mantendo apenas a data no fuso original.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
