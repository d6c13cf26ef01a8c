package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type PaymentMethodGateway struct {
	Client *Client
}

func (g PaymentMethodGateway) List(ctx context.Context) ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/PaymentMethod", nil, &out, authRequired, "list payment methods")
	return out, err
}

// ListActive filters the catalog down to selectable methods.
func (g PaymentMethodGateway) ListActive(ctx context.Context) ([]models.PaymentMethod, error) {
	all, err := g.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.PaymentMethod, 0, len(all))
	for _, m := range all {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (g PaymentMethodGateway) Create(ctx context.Context, dto models.CreatePaymentMethod) (models.PaymentMethod, error) {
	var out models.PaymentMethod
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/PaymentMethod", dto, &out, authRequired, "create payment method")
	return out, err
}

func (g PaymentMethodGateway) Update(ctx context.Context, id string, dto models.UpdatePaymentMethod) (models.PaymentMethod, error) {
	var out models.PaymentMethod
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/PaymentMethod/"+url.PathEscape(id), dto, &out, authRequired, "update payment method")
	return out, err
}
