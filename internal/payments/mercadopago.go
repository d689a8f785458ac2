package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/beautybook/beautybook-api/internal/models"
)

// MercadoPago gera links de pagamento para parcelas. Opcional:
// só é instanciado quando MP_ACCESS_TOKEN está configurado.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		prefs: preference.NewClient(cfg),
	}, nil
}

// InstallmentLink cria uma preferência de pagamento para a parcela e
// devolve a URL de checkout. A parcela fica como referência externa
// para conciliação manual.
func (m *MercadoPago) InstallmentLink(
	ctx context.Context,
	acc *models.AccountReceivable,
	inst *models.Installment,
) (string, error) {

	req := preference.Request{
		ExternalReference: inst.ID.String(),
		Items: []preference.ItemRequest{
			{
				ID:         inst.ID.String(),
				Title:      fmt.Sprintf("%s (parcela %d)", acc.Title, inst.Number),
				Quantity:   1,
				CurrencyID: "BRL",
				UnitPrice:  inst.Amount,
			},
		},
	}

	pref, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return pref.InitPoint, nil
}
