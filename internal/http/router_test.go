package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/config"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/session"
)

// pageApp wires the full router against a canned upstream aggregate so the
// rendered HTML can be asserted on.
func pageApp(t *testing.T, detail models.ReservationDetail) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/reservation/"):
			_ = json.NewEncoder(w).Encode(detail)
		case r.URL.Path == "/api/PaymentMethod":
			_ = json.NewEncoder(w).Encode([]models.PaymentMethod{
				{ID: "pm1", Code: "CASH", Description: "Cash", IsActive: true},
				{ID: "pm2", Code: "CARD", Description: "Card", IsActive: true},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	monitor, err := session.NewMonitor()
	if err != nil {
		t.Fatalf("NewMonitor: %v", err)
	}
	t.Cleanup(monitor.Close)

	env := config.Env{
		APIBaseURL:    upstream.URL,
		APITimeout:    5 * time.Second,
		TemplatesGlob: "../../web/templates/*.html",
	}
	return NewRouter(env, session.Store{}, monitor)
}

func getPage(t *testing.T, r *gin.Engine, path string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "tok"})
	req.AddCookie(&http.Cookie{Name: session.RoleCookie, Value: models.RoleAdmin})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s = %d, body: %s", path, w.Code, w.Body.String())
	}
	return w.Body.String()
}

func pageAggregate() models.ReservationDetail {
	return models.ReservationDetail{
		ID:           "res-9",
		CustomerName: "Anna Verdi",
		Email:        "anna@hotelbear.example",
		RoomID:       "room-1",
		RoomNumber:   "101",
		CheckIn:      "2025-06-01T00:00:00Z",
		CheckOut:     "2025-06-03T00:00:00Z",
		Status:       models.StatusConfirmed,
		Guests: []models.Guest{
			{ID: "g1", ReservationID: "res-9", FirstName: "Mario", LastName: "Rossi", Role: models.GuestRoleSingle},
		},
		Charges: []models.Charge{
			{ID: "c1", ReservationID: "res-9", Description: "Dinner", Type: models.ChargeTypeFood, UnitPrice: 30, Quantity: 1, VatRate: 10, IsInvoiced: true},
			{ID: "c2", ReservationID: "res-9", Description: "Minibar", Type: models.ChargeTypeMinibar, UnitPrice: 8, Quantity: 2, VatRate: 22},
		},
		Payments: []models.Payment{
			{ID: "p1", ReservationID: "res-9", Amount: 50, Type: models.PaymentTypeDeposit, Status: models.PaymentStatusCompleted, PaymentMethodID: "pm2", PaymentMethodCode: "CARD"},
		},
		Invoices: []models.Invoice{
			{
				ID: "inv-1", ReservationID: "res-9", InvoiceNumber: "2025/0007", Status: models.InvoiceStatusIssued,
				Items: []models.InvoiceItem{
					{Description: "Room - 101", UnitPrice: 120, Quantity: 1, VatRate: 22},
					{Description: "Dinner", UnitPrice: 30, Quantity: 1, VatRate: 10},
				},
			},
		},
	}
}

func TestReservationPageAnnotatesInvoicedItems(t *testing.T) {
	r := pageApp(t, pageAggregate())
	body := getPage(t, r, "/reservations/res-9")

	if !strings.Contains(body, "Invoiced (Invoice: 2025/0007)") {
		t.Fatal("invoiced charge must show its invoice number")
	}
	if !strings.Contains(body, "Room fee invoiced (Invoice: 2025/0007)") {
		t.Fatal("billed room fee must show its invoice number")
	}
	if strings.Contains(body, `name="includeRoom"`) {
		t.Fatal("include-room checkbox must disappear once the fee is billed")
	}
	if !strings.Contains(body, "?editCharge=c2") {
		t.Fatal("editable charge row must carry an edit link")
	}
	if strings.Contains(body, "?editCharge=c1") {
		t.Fatal("invoiced charge row must not carry an edit link")
	}
	if !strings.Contains(body, "?editGuest=g1") || !strings.Contains(body, "?editPayment=p1") {
		t.Fatal("guest and payment rows must carry edit links")
	}
}

func TestReservationPageChargeFormHasVatInput(t *testing.T) {
	r := pageApp(t, pageAggregate())
	body := getPage(t, r, "/reservations/res-9")

	if !strings.Contains(body, `name="vatRate" value="22"`) {
		t.Fatal("new-charge form must offer a vat rate input with the standard default")
	}
}

func TestReservationPageTracksEditedDateField(t *testing.T) {
	r := pageApp(t, pageAggregate())
	body := getPage(t, r, "/reservations/res-9")

	if !strings.Contains(body, `id="changedDate" name="changedDate"`) {
		t.Fatal("details form must carry the changed-date field")
	}
	if !strings.Contains(body, `.value='checkIn'`) || !strings.Contains(body, `.value='checkOut'`) {
		t.Fatal("each date input must record itself as the edited field")
	}
}

func TestReservationPageEditModePrefillsForms(t *testing.T) {
	r := pageApp(t, pageAggregate())

	body := getPage(t, r, "/reservations/res-9?editCharge=c2")
	if !strings.Contains(body, `name="chargeId" value="c2"`) {
		t.Fatalf("charge form must carry the hidden id, body: %s", body)
	}
	if !strings.Contains(body, `name="unitPrice" value="8.00"`) ||
		!strings.Contains(body, `name="quantity" min="1" value="2"`) ||
		!strings.Contains(body, `name="vatRate" value="22.00"`) {
		t.Fatal("charge form must be pre-populated from the selected row")
	}
	if !strings.Contains(body, "Update charge") {
		t.Fatal("charge form must switch to update mode")
	}

	body = getPage(t, r, "/reservations/res-9?editGuest=g1")
	if !strings.Contains(body, `name="guestId" value="g1"`) ||
		!strings.Contains(body, `name="firstName" value="Mario"`) {
		t.Fatal("guest form must be pre-populated from the selected row")
	}

	body = getPage(t, r, "/reservations/res-9?editPayment=p1")
	if !strings.Contains(body, `name="paymentId" value="p1"`) ||
		!strings.Contains(body, `name="amount" value="50.00"`) {
		t.Fatal("payment form must be pre-populated from the selected row")
	}
	if !strings.Contains(body, `value="Refunded"`) {
		t.Fatal("payment edit mode must expose the status select")
	}
}

func TestReservationPageEditModeIgnoresInvoicedRows(t *testing.T) {
	r := pageApp(t, pageAggregate())

	body := getPage(t, r, "/reservations/res-9?editCharge=c1")
	if !strings.Contains(body, `name="chargeId" value=""`) {
		t.Fatal("an invoiced charge must not be loaded into the form")
	}
}
