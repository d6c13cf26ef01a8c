package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type PaymentGateway struct {
	Client *Client
}

func (g PaymentGateway) Create(ctx context.Context, dto models.CreatePayment) (models.Payment, error) {
	var out models.Payment
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/Payment", dto, &out, authRequired, "create payment")
	return out, err
}

func (g PaymentGateway) Update(ctx context.Context, id string, dto models.UpdatePayment) (models.Payment, error) {
	var out models.Payment
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/Payment/"+url.PathEscape(id), dto, &out, authRequired, "update payment")
	return out, err
}

func (g PaymentGateway) Delete(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/Payment/"+url.PathEscape(id), nil, nil, authRequired, "delete payment")
}
