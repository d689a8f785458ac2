package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beautybook/beautybook-api/internal/httperr"
)

var businessMessages = map[string]string{
	"client_not_found":          "Cliente não encontrado.",
	"service_not_found":         "Serviço não encontrado.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"account_not_found":         "Conta não encontrada.",
	"installment_not_found":     "Parcela não encontrada.",
	"installment_already_paid":  "Parcela já está paga.",
	"invalid_installment_count": "Número de parcelas inválido.",
	"invalid_total_amount":      "Valor total inválido.",
	"invalid_due_date":          "Data de vencimento inválida.",
	"invalid_date_or_time":      "Data ou hora inválida.",
	"invalid_state":             "Mudança de status inválida.",
	"invalid_status":            "Status inválido.",
}

// writeError traduz BusinessError em 4xx com mensagem estável;
// qualquer outro erro vira 500 com o código de fallback.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operação inválida."
		}

		status := http.StatusBadRequest
		if strings.HasSuffix(be.Code, "_not_found") {
			status = http.StatusNotFound
		}

		httperr.Write(c, status, be.Code, msg)
		return
	}

	httperr.Internal(c, fallbackCode, fallbackMsg)
}
