package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
)

// fakeHotelAPI is a minimal in-memory stand-in for the remote server: it
// stores one reservation aggregate and recomputes remaining amount and
// isInvoiced flags the way the real backend would.
type fakeHotelAPI struct {
	mu          sync.Mutex
	detail      models.ReservationDetail
	methods     []models.PaymentMethod
	nextID      int
	invoiceSeen models.CreateInvoiceRequest
}

func (f *fakeHotelAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/reservation/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.detail)
	})
	mux.HandleFunc("PUT /api/reservation/", func(w http.ResponseWriter, r *http.Request) {
		var dto models.UpdateReservation
		_ = json.NewDecoder(r.Body).Decode(&dto)
		f.mu.Lock()
		defer f.mu.Unlock()
		if dto.Status != "" {
			f.detail.Status = dto.Status
		}
		if dto.Note != "" {
			f.detail.Note = dto.Note
		}
		_ = json.NewEncoder(w).Encode(f.detail)
	})
	mux.HandleFunc("GET /api/PaymentMethod", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(f.methods)
	})
	mux.HandleFunc("POST /api/charge", func(w http.ResponseWriter, r *http.Request) {
		var c models.Charge
		_ = json.NewDecoder(r.Body).Decode(&c)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		c.ID = "c" + strconv.Itoa(f.nextID)
		f.detail.Charges = append(f.detail.Charges, c)
		f.recompute()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(c)
	})
	mux.HandleFunc("POST /api/Payment", func(w http.ResponseWriter, r *http.Request) {
		var dto models.CreatePayment
		_ = json.NewDecoder(r.Body).Decode(&dto)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		p := models.Payment{
			ID:            "p" + strconv.Itoa(f.nextID),
			ReservationID: dto.ReservationID,
			Amount:        dto.Amount,
			Type:          dto.Type,
			Status:        models.PaymentStatusPending,
		}
		f.detail.Payments = append(f.detail.Payments, p)
		f.recompute()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	})
	mux.HandleFunc("POST /api/Invoice", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateInvoiceRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.invoiceSeen = req
		total := 0.0
		for _, it := range req.Items {
			total += it.UnitPrice * float64(it.Quantity)
		}
		inv := models.Invoice{
			ID:            "inv-1",
			ReservationID: req.ReservationID,
			InvoiceNumber: "2025/0001",
			Status:        models.InvoiceStatusIssued,
			TotalAmount:   models.RoundMoney(total),
			Items:         req.Items,
		}
		f.detail.Invoices = append(f.detail.Invoices, inv)
		// freeze the matching charges
		for i, c := range f.detail.Charges {
			for _, it := range req.Items {
				if it.Description == c.Description && it.UnitPrice == c.UnitPrice && it.Quantity == c.Quantity {
					f.detail.Charges[i].IsInvoiced = true
				}
			}
		}
		f.recompute()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(inv)
	})

	return mux
}

func (f *fakeHotelAPI) recompute() {
	charges := 0.0
	for _, c := range f.detail.Charges {
		charges += c.Total()
	}
	paid := 0.0
	for _, p := range f.detail.Payments {
		paid += p.Amount
	}
	f.detail.RemainingAmount = models.RoundMoney(charges - paid)
}

func newEditor(t *testing.T, fake *fakeHotelAPI) ReservationEditor {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := gateway.NewClient(srv.URL, 5*time.Second, func() string { return "tok" })
	return ReservationEditor{
		Reservations: gateway.ReservationGateway{Client: client},
		Guests:       gateway.GuestGateway{Client: client},
		Charges:      gateway.ChargeGateway{Client: client},
		Payments:     gateway.PaymentGateway{Client: client},
		Methods:      gateway.PaymentMethodGateway{Client: client},
		Invoices:     gateway.InvoiceGateway{Client: client},
		Rooms:        gateway.RoomGateway{Client: client},
	}
}

func baseAggregate() models.ReservationDetail {
	return models.ReservationDetail{
		ID:           "res-1",
		CustomerName: "Anna Verdi",
		Email:        "anna@hotelbear.example",
		RoomID:       "room-1",
		RoomNumber:   "101",
		CheckIn:      "2025-06-01T00:00:00Z",
		CheckOut:     "2025-06-03T00:00:00Z",
		Status:       models.StatusConfirmed,
		Guests:       []models.Guest{},
		Charges:      []models.Charge{},
		Payments:     []models.Payment{},
		Invoices:     []models.Invoice{},
	}
}

func TestOpenFetchesAggregateAndActiveMethods(t *testing.T) {
	fake := &fakeHotelAPI{
		detail: baseAggregate(),
		methods: []models.PaymentMethod{
			{ID: "pm1", Code: "CASH", IsActive: true},
			{ID: "pm2", Code: "OLD", IsActive: false},
		},
	}
	editor := newEditor(t, fake)

	sess, err := editor.Open(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if sess.Reservation.ID != "res-1" {
		t.Fatalf("wrong aggregate: %+v", sess.Reservation)
	}
	if len(sess.Methods) != 1 || sess.Methods[0].Code != "CASH" {
		t.Fatalf("inactive methods must be filtered: %+v", sess.Methods)
	}
}

func TestApplyDatesClearsInvalidatedField(t *testing.T) {
	// moving check-in past check-out clears check-out
	ci, co := ApplyDates("2025-06-05", "2025-06-03", "checkIn")
	if ci != "2025-06-05" || co != "" {
		t.Fatalf("checkIn edit: got (%q, %q)", ci, co)
	}
	// moving check-out before check-in clears check-in
	ci, co = ApplyDates("2025-06-05", "2025-06-03", "checkOut")
	if ci != "" || co != "2025-06-03" {
		t.Fatalf("checkOut edit: got (%q, %q)", ci, co)
	}
	// equal dates are allowed
	ci, co = ApplyDates("2025-06-03", "2025-06-03", "checkIn")
	if ci != "2025-06-03" || co != "2025-06-03" {
		t.Fatalf("equal dates must be kept: (%q, %q)", ci, co)
	}
}

func TestSaveChargeRejectsInvalidInput(t *testing.T) {
	editor := newEditor(t, &fakeHotelAPI{detail: baseAggregate()})

	cases := []models.Charge{
		{ReservationID: "res-1", Description: "", Type: models.ChargeTypeFood, UnitPrice: 1, Quantity: 1},
		{ReservationID: "res-1", Description: "x", Type: "Spa", UnitPrice: 1, Quantity: 1},
		{ReservationID: "res-1", Description: "x", Type: models.ChargeTypeFood, UnitPrice: -1, Quantity: 1},
		{ReservationID: "res-1", Description: "x", Type: models.ChargeTypeFood, UnitPrice: 1, Quantity: 0},
		{ReservationID: "res-1", Description: "x", Type: models.ChargeTypeFood, UnitPrice: 1, Quantity: 1, VatRate: -4},
		{ReservationID: "res-1", Description: "x", Type: models.ChargeTypeFood, UnitPrice: 1, Quantity: 1, IsInvoiced: true},
	}
	for i, c := range cases {
		if err := editor.SaveCharge(context.Background(), c); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestSavePaymentRequiresMethodOnCreate(t *testing.T) {
	editor := newEditor(t, &fakeHotelAPI{detail: baseAggregate()})

	err := editor.SavePayment(context.Background(), PaymentForm{
		ReservationID: "res-1", Amount: 10, Type: models.PaymentTypeDeposit,
	})
	if !domain.IsValidation(err) || !strings.Contains(err.Error(), "paymentMethodId") {
		t.Fatalf("expected paymentMethodId validation error, got %v", err)
	}
}

// End-to-end walk of the charge -> payment -> invoice flow against the fake
// backend, mirroring a front-desk session.
func TestChargePaymentInvoiceFlow(t *testing.T) {
	fake := &fakeHotelAPI{detail: baseAggregate(), methods: []models.PaymentMethod{{ID: "pm1", Code: "CASH", IsActive: true}}}
	editor := newEditor(t, fake)
	ctx := context.Background()

	err := editor.SaveCharge(ctx, models.Charge{
		ReservationID: "res-1",
		Description:   "Room service",
		Type:          models.ChargeTypeRoomService,
		UnitPrice:     10,
		Quantity:      2,
		VatRate:       22,
	})
	if err != nil {
		t.Fatalf("SaveCharge error: %v", err)
	}

	detail, err := editor.Refresh(ctx, "res-1")
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if len(detail.Charges) != 1 || detail.Charges[0].Total() != 20.00 {
		t.Fatalf("charge total = %v, want 20.00", detail.Charges)
	}
	if detail.Charges[0].VatRate != 22 {
		t.Fatalf("charge vat rate = %v, want 22", detail.Charges[0].VatRate)
	}

	err = editor.SavePayment(ctx, PaymentForm{
		ReservationID:   "res-1",
		Amount:          20,
		Type:            models.PaymentTypeBalance,
		PaymentMethodID: "pm1",
	})
	if err != nil {
		t.Fatalf("SavePayment error: %v", err)
	}
	detail, err = editor.Refresh(ctx, "res-1")
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if detail.RemainingAmount != 0 {
		t.Fatalf("remaining amount = %v, want 0", detail.RemainingAmount)
	}

	plan := InvoicePlan{
		Reservation:        detail,
		SelectedChargeIDs:  []string{detail.Charges[0].ID},
		SelectedPaymentIDs: []string{detail.Payments[0].ID},
		Customer:           models.InvoiceCustomer{FirstName: "Anna", LastName: "Verdi"},
	}
	inv, err := editor.CreateInvoice(ctx, plan)
	if err != nil {
		t.Fatalf("CreateInvoice error: %v", err)
	}
	if inv.TotalAmount != 20.00 {
		t.Fatalf("invoice total = %v, want 20.00", inv.TotalAmount)
	}
	fake.mu.Lock()
	seen := fake.invoiceSeen
	fake.mu.Unlock()
	if len(seen.Items) != 1 || seen.Items[0].VatRate != 22 {
		t.Fatalf("invoice line must inherit the charge vat rate: %+v", seen.Items)
	}

	detail, err = editor.Refresh(ctx, "res-1")
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if !detail.Charges[0].IsInvoiced {
		t.Fatal("charge must be frozen after invoicing on the next refetch")
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	editor := newEditor(t, &fakeHotelAPI{detail: baseAggregate()})

	err := editor.Update(context.Background(), "res-1", UpdateForm{Status: "Teleported"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
