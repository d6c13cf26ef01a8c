package services

import (
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

// roomItemDescription is how the room-stay fee appears as an invoice line;
// it is also how an existing invoice is recognized as covering the room.
func roomItemDescription(roomNumber string) string {
	return "Room - " + roomNumber
}

// InvoicePlan is the client-side composition of one invoice: a subset of the
// reservation's charges, optionally the room-stay fee, and the payments the
// operator tagged as covering it. Partial invoicing is allowed; the only hard
// guard is that covering payments reach the proposed total.
type InvoicePlan struct {
	Reservation        models.ReservationDetail
	RoomPrice          float64
	SelectedChargeIDs  []string
	IncludeRoom        bool
	SelectedPaymentIDs []string
	Customer           models.InvoiceCustomer
}

// SelectableCharges are the charges still open for invoicing; anything with
// isInvoiced set is frozen and rendered read-only.
func (p InvoicePlan) SelectableCharges() []models.Charge {
	out := make([]models.Charge, 0, len(p.Reservation.Charges))
	for _, c := range p.Reservation.Charges {
		if !c.IsInvoiced {
			out = append(out, c)
		}
	}
	return out
}

func (p InvoicePlan) SelectablePayments() []models.Payment {
	out := make([]models.Payment, 0, len(p.Reservation.Payments))
	for _, pay := range p.Reservation.Payments {
		if !pay.IsInvoiced {
			out = append(out, pay)
		}
	}
	return out
}

// RoomInvoiced reports whether some existing invoice already carries the
// room-stay line, in which case the fee cannot be billed again.
func (p InvoicePlan) RoomInvoiced() bool {
	return p.roomInvoice() != nil
}

// RoomInvoiceNumber resolves the number of the invoice covering the room
// stay, "" when none or not yet numbered.
func (p InvoicePlan) RoomInvoiceNumber() string {
	if inv := p.roomInvoice(); inv != nil {
		return inv.InvoiceNumber
	}
	return ""
}

func (p InvoicePlan) roomInvoice() *models.Invoice {
	want := roomItemDescription(p.Reservation.RoomNumber)
	for i, inv := range p.Reservation.Invoices {
		if inv.Status == models.InvoiceStatusCancelled {
			continue
		}
		for _, item := range inv.Items {
			if strings.Contains(item.Description, want) {
				return &p.Reservation.Invoices[i]
			}
		}
	}
	return nil
}

// InvoiceNumberFor resolves the invoice number freezing a charge, when the
// line can be matched back to one.
func (p InvoicePlan) InvoiceNumberFor(c models.Charge) string {
	for _, inv := range p.Reservation.Invoices {
		if inv.Status == models.InvoiceStatusCancelled {
			continue
		}
		for _, item := range inv.Items {
			if item.Description == c.Description && item.Quantity == c.Quantity && item.UnitPrice == c.UnitPrice {
				return inv.InvoiceNumber
			}
		}
	}
	return ""
}

func (p InvoicePlan) selectedCharges() []models.Charge {
	selected := map[string]bool{}
	for _, id := range p.SelectedChargeIDs {
		selected[id] = true
	}
	out := []models.Charge{}
	for _, c := range p.SelectableCharges() {
		if selected[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// TotalToInvoice is the proposed invoice total: selected charge totals plus
// the room fee once, when included and not already invoiced.
func (p InvoicePlan) TotalToInvoice() float64 {
	total := 0.0
	if p.IncludeRoom && !p.RoomInvoiced() {
		total = p.RoomPrice
	}
	for _, c := range p.selectedCharges() {
		total += c.Total()
	}
	return models.RoundMoney(total)
}

// CoveringTotal sums the payments tagged as covering this invoice; it is
// recomputed on every selection change so the submit guard tracks live.
func (p InvoicePlan) CoveringTotal() float64 {
	selected := map[string]bool{}
	for _, id := range p.SelectedPaymentIDs {
		selected[id] = true
	}
	total := 0.0
	for _, pay := range p.SelectablePayments() {
		if selected[pay.ID] {
			total += pay.Amount
		}
	}
	return models.RoundMoney(total)
}

// Validate is the submission guard. It never reaches the network.
func (p InvoicePlan) Validate() error {
	if strings.TrimSpace(p.Customer.FirstName) == "" || strings.TrimSpace(p.Customer.LastName) == "" {
		return domain.ValidationError{Msg: "Customer first and last name are required"}
	}
	billRoom := p.IncludeRoom && !p.RoomInvoiced()
	if !billRoom && len(p.selectedCharges()) == 0 {
		return domain.ValidationError{Msg: "Select at least one item to invoice"}
	}
	if p.CoveringTotal() < p.TotalToInvoice() {
		return domain.ValidationError{Msg: "Selected payments do not cover the total to invoice"}
	}
	return nil
}

// BuildRequest turns a validated plan into the API payload. The room line
// goes first, then the selected charges in reservation order.
func (p InvoicePlan) BuildRequest() (models.CreateInvoiceRequest, error) {
	if err := p.Validate(); err != nil {
		return models.CreateInvoiceRequest{}, err
	}

	items := []models.InvoiceItem{}
	if p.IncludeRoom && !p.RoomInvoiced() {
		items = append(items, models.InvoiceItem{
			Description: roomItemDescription(p.Reservation.RoomNumber),
			Quantity:    1,
			UnitPrice:   p.RoomPrice,
			VatRate:     22,
		})
	}
	for _, c := range p.selectedCharges() {
		items = append(items, models.InvoiceItem{
			Description: c.Description,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			VatRate:     c.VatRate,
		})
	}

	customer := p.Customer
	return models.CreateInvoiceRequest{
		ReservationID: p.Reservation.ID,
		Customer:      &customer,
		Items:         items,
	}, nil
}
