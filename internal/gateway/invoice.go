package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type InvoiceGateway struct {
	Client *Client
}

func (g InvoiceGateway) Create(ctx context.Context, dto models.CreateInvoiceRequest) (models.Invoice, error) {
	var out models.Invoice
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/Invoice", dto, &out, authRequired, "create invoice")
	return out, err
}

func (g InvoiceGateway) GetByID(ctx context.Context, id string) (models.Invoice, error) {
	var out models.Invoice
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/Invoice/"+url.PathEscape(id), nil, &out, authRequired, "invoice detail")
	return out, err
}

func (g InvoiceGateway) Cancel(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodPost, "/api/Invoice/"+url.PathEscape(id)+"/cancel", nil, nil, authRequired, "cancel invoice")
}

// PDF fetches the server-rendered invoice document for inline display.
func (g InvoiceGateway) PDF(ctx context.Context, id string) ([]byte, string, error) {
	return g.Client.doRaw(ctx, http.MethodGet, "/api/Invoice/"+url.PathEscape(id)+"/pdf", authRequired, "invoice pdf")
}
