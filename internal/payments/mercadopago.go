package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Gateway cria a cobrança da compra de pacote. Colaborador externo:
// o core só precisa da URL de pagamento.
type Gateway interface {
	CreatePackageCheckout(
		ctx context.Context,
		pkg *models.ServicePackage,
		client *models.Client,
	) (string, error)
}

// --------------------------------------------------
// Mercado Pago
// --------------------------------------------------

type MercadoPago struct {
	pref preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{pref: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreatePackageCheckout(
	ctx context.Context,
	pkg *models.ServicePackage,
	client *models.Client,
) (string, error) {

	cost, _ := pkg.PackageCost.Float64()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title: fmt.Sprintf(
					"Pacote %s (%d sessões)",
					pkg.ServiceType,
					pkg.TotalSessions,
				),
				Quantity:   1,
				UnitPrice:  cost,
				CurrencyID: "BRL",
			},
		},
		Payer: &preference.PayerRequest{
			Name:  client.Name,
			Email: client.Email,
		},
		ExternalReference: fmt.Sprintf("package-%d", pkg.ID),
	}

	resource, err := m.pref.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resource.InitPoint, nil
}

var _ Gateway = (*MercadoPago)(nil)
