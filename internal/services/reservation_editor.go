package services

import (
	"context"
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// ReservationEditor drives the aggregate-edit workflow: one reservation with
// its guests, charges, payments and invoices, edited through independent
// sub-forms. Every sub-entity mutation returns void; the caller triggers the
// one canonical Refresh so aggregate fields (remaining amount, isInvoiced
// flags) never drift from the server.
type ReservationEditor struct {
	Reservations gateway.ReservationGateway
	Guests       gateway.GuestGateway
	Charges      gateway.ChargeGateway
	Payments     gateway.PaymentGateway
	Methods      gateway.PaymentMethodGateway
	Invoices     gateway.InvoiceGateway
	Rooms        gateway.RoomGateway
	RequestID    string
}

// EditSession is everything the editing view needs on open: the full
// aggregate plus the active payment-method catalog. Any prior selection state
// belongs to the caller and is discarded by opening anew.
type EditSession struct {
	Reservation models.ReservationDetail
	Methods     []models.PaymentMethod
}

// Open fetches the reservation aggregate and the active payment-method
// catalog. A failed fetch surfaces as an inline alert; it never tears down
// the surrounding page.
func (e ReservationEditor) Open(ctx context.Context, reservationID string) (EditSession, error) {
	utils.LogEvent(e.RequestID, "reservation", "open", "id="+reservationID)

	detail, err := e.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return EditSession{}, err
	}
	methods, err := e.Methods.ListActive(ctx)
	if err != nil {
		return EditSession{}, err
	}
	return EditSession{Reservation: detail, Methods: methods}, nil
}

// Refresh is the canonical aggregate refetch invoked after every successful
// sub-entity mutation. No partial client-side merge exists on purpose.
func (e ReservationEditor) Refresh(ctx context.Context, reservationID string) (models.ReservationDetail, error) {
	utils.LogEvent(e.RequestID, "reservation", "refresh", "id="+reservationID)
	return e.Reservations.GetByID(ctx, reservationID)
}

// ApplyDates enforces checkIn <= checkOut by clearing the field the edit
// invalidated rather than rejecting the input. changed names the field the
// user just touched ("checkIn" or "checkOut").
func ApplyDates(checkIn, checkOut, changed string) (string, string) {
	ci, errIn := utils.ParseDate(checkIn)
	co, errOut := utils.ParseDate(checkOut)
	if errIn != nil || errOut != nil || !co.Before(ci) {
		return checkIn, checkOut
	}
	if changed == "checkIn" {
		return checkIn, ""
	}
	return "", checkOut
}

// UpdateForm is the full mutable field set submitted as one PUT.
type UpdateForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Note      string
	RoomID    string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string
	Status    string
}

// Update submits the whole form. On success the caller refreshes and closes;
// on failure the session stays open for retry with the server's message.
func (e ReservationEditor) Update(ctx context.Context, reservationID string, form UpdateForm) error {
	if form.Status != "" {
		ok := false
		for _, s := range models.ReservationStatuses {
			if s == form.Status {
				ok = true
				break
			}
		}
		if !ok {
			return domain.ValidationError{Field: "status", Msg: "unknown reservation status"}
		}
	}

	dto := models.UpdateReservation{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Note:      form.Note,
		RoomID:    form.RoomID,
		Status:    form.Status,
	}
	if form.CheckIn != "" {
		dto.CheckIn = utils.ToISO(form.CheckIn)
	}
	if form.CheckOut != "" {
		dto.CheckOut = utils.ToISO(form.CheckOut)
	}

	utils.LogEvent(e.RequestID, "reservation", "update", "id="+reservationID)
	_, err := e.Reservations.Update(ctx, reservationID, dto)
	return err
}

// Cancel flips the reservation to Cancelled server-side; nothing is removed.
func (e ReservationEditor) Cancel(ctx context.Context, reservationID string) error {
	utils.LogEvent(e.RequestID, "reservation", "cancel", "id="+reservationID)
	return e.Reservations.Cancel(ctx, reservationID)
}

// SaveGuest creates when the guest has no id, updates otherwise. Validation
// runs first and names the missing field.
func (e ReservationEditor) SaveGuest(ctx context.Context, g models.Guest) error {
	if err := ValidateGuest(g); err != nil {
		return err
	}
	if g.ID == "" {
		utils.LogEvent(e.RequestID, "guest", "create", "reservation_id="+g.ReservationID)
		_, err := e.Guests.Create(ctx, g)
		return err
	}
	utils.LogEvent(e.RequestID, "guest", "update", "id="+g.ID)
	_, err := e.Guests.Update(ctx, g.ID, g)
	return err
}

func (e ReservationEditor) DeleteGuest(ctx context.Context, guestID string) error {
	utils.LogEvent(e.RequestID, "guest", "delete", "id="+guestID)
	return e.Guests.Delete(ctx, guestID)
}

// SaveCharge validates and saves one charge. A charge frozen by invoicing is
// rejected before the network is touched; Amount is always recomputed from
// unit price and quantity so the displayed total cannot depend on edit order.
func (e ReservationEditor) SaveCharge(ctx context.Context, c models.Charge) error {
	if c.IsInvoiced {
		return domain.ValidationError{Msg: "charge is already invoiced and can no longer be edited"}
	}
	if strings.TrimSpace(c.Description) == "" {
		return domain.ValidationError{Field: "description", Msg: "required"}
	}
	typeOK := false
	for _, t := range models.ChargeTypes {
		if t == c.Type {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return domain.ValidationError{Field: "type", Msg: "unknown charge type"}
	}
	if c.UnitPrice < 0 {
		return domain.ValidationError{Field: "unitPrice", Msg: "must not be negative"}
	}
	if c.Quantity < 1 {
		return domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	if c.VatRate < 0 {
		return domain.ValidationError{Field: "vatRate", Msg: "must not be negative"}
	}
	c.Amount = c.Total()

	if c.ID == "" {
		utils.LogEvent(e.RequestID, "charge", "create", "reservation_id="+c.ReservationID)
		_, err := e.Charges.Create(ctx, c)
		return err
	}
	utils.LogEvent(e.RequestID, "charge", "update", "id="+c.ID)
	_, err := e.Charges.Update(ctx, c.ID, c)
	return err
}

func (e ReservationEditor) DeleteCharge(ctx context.Context, chargeID string) error {
	utils.LogEvent(e.RequestID, "charge", "delete", "id="+chargeID)
	return e.Charges.Delete(ctx, chargeID)
}

// PaymentForm covers both create and edit; ID empty means create.
type PaymentForm struct {
	ID              string
	ReservationID   string
	Amount          float64
	Type            string
	Status          string
	PaymentMethodID string
	PaidAt          string
	IsInvoiced      bool
}

func (e ReservationEditor) SavePayment(ctx context.Context, form PaymentForm) error {
	if form.IsInvoiced {
		return domain.ValidationError{Msg: "payment is already invoiced and can no longer be edited"}
	}
	if form.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	typeOK := false
	for _, t := range models.PaymentTypes {
		if t == form.Type {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return domain.ValidationError{Field: "type", Msg: "unknown payment type"}
	}

	if form.ID == "" {
		if form.PaymentMethodID == "" {
			return domain.ValidationError{Field: "paymentMethodId", Msg: "required"}
		}
		utils.LogEvent(e.RequestID, "payment", "create", "reservation_id="+form.ReservationID)
		_, err := e.Payments.Create(ctx, models.CreatePayment{
			ReservationID:   form.ReservationID,
			Amount:          form.Amount,
			Type:            form.Type,
			PaymentMethodID: form.PaymentMethodID,
			PaidAt:          form.PaidAt,
		})
		return err
	}

	if form.Status != "" {
		statusOK := false
		for _, s := range models.PaymentStatuses {
			if s == form.Status {
				statusOK = true
				break
			}
		}
		if !statusOK {
			return domain.ValidationError{Field: "status", Msg: "unknown payment status"}
		}
	}
	utils.LogEvent(e.RequestID, "payment", "update", "id="+form.ID)
	_, err := e.Payments.Update(ctx, form.ID, models.UpdatePayment{
		Amount:          form.Amount,
		Type:            form.Type,
		Status:          form.Status,
		PaymentMethodID: form.PaymentMethodID,
		PaidAt:          form.PaidAt,
	})
	return err
}

func (e ReservationEditor) DeletePayment(ctx context.Context, paymentID string) error {
	utils.LogEvent(e.RequestID, "payment", "delete", "id="+paymentID)
	return e.Payments.Delete(ctx, paymentID)
}

// CreateInvoice runs the coverage guard and submits the composed invoice.
func (e ReservationEditor) CreateInvoice(ctx context.Context, plan InvoicePlan) (models.Invoice, error) {
	req, err := plan.BuildRequest()
	if err != nil {
		return models.Invoice{}, err
	}
	utils.LogEvent(e.RequestID, "invoice", "create", "reservation_id="+req.ReservationID)
	return e.Invoices.Create(ctx, req)
}

func (e ReservationEditor) CancelInvoice(ctx context.Context, invoiceID string) error {
	utils.LogEvent(e.RequestID, "invoice", "cancel", "id="+invoiceID)
	return e.Invoices.Cancel(ctx, invoiceID)
}

// RoomPrice resolves the nightly fee used for the invoice's room line.
func (e ReservationEditor) RoomPrice(ctx context.Context, roomID string) (float64, error) {
	if roomID == "" {
		return 0, nil
	}
	room, err := e.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return room.PriceForNight, nil
}
