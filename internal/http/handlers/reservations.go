package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/services"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

func editor(c *gin.Context) services.ReservationEditor {
	cl := client(c)
	return services.ReservationEditor{
		Reservations: gateway.ReservationGateway{Client: cl},
		Guests:       gateway.GuestGateway{Client: cl},
		Charges:      gateway.ChargeGateway{Client: cl},
		Payments:     gateway.PaymentGateway{Client: cl},
		Methods:      gateway.PaymentMethodGateway{Client: cl},
		Invoices:     gateway.InvoiceGateway{Client: cl},
		Rooms:        gateway.RoomGateway{Client: cl},
		RequestID:    middleware.GetRequestID(c),
	}
}

// GET /dashboard
func Dashboard(c *gin.Context) {
	search := models.ReservationSearch{
		CustomerName: strings.TrimSpace(c.Query("customerName")),
		Email:        strings.TrimSpace(c.Query("email")),
		Phone:        strings.TrimSpace(c.Query("phone")),
		Status:       c.Query("status"),
		FromDate:     c.Query("fromDate"),
		ToDate:       c.Query("toDate"),
	}

	reservations, err := gateway.ReservationGateway{Client: client(c)}.Search(c.Request.Context(), search)
	if err != nil {
		renderError(c, "dashboard.html", gin.H{"Search": search}, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", view(c, gin.H{
		"Search":       search,
		"Reservations": reservations,
		"Statuses":     models.ReservationStatuses,
	}))
}

// GET /reservations/:id
func ShowReservation(c *gin.Context) {
	id := c.Param("id")
	sess, err := editor(c).Open(c.Request.Context(), id)
	if err != nil {
		renderError(c, "dashboard.html", nil, err)
		return
	}
	renderReservation(c, http.StatusOK, sess, "")
}

func renderReservation(c *gin.Context, status int, sess services.EditSession, errMsg string) {
	var editGuest models.Guest
	if id := c.Query("editGuest"); id != "" {
		for _, g := range sess.Reservation.Guests {
			if g.ID == id {
				editGuest = g
				editGuest.BirthDate = utils.DateOnly(g.BirthDate)
				editGuest.DocumentExpiration = utils.DateOnly(g.DocumentExpiration)
			}
		}
	}
	var editCharge models.Charge
	if id := c.Query("editCharge"); id != "" {
		for _, ch := range sess.Reservation.Charges {
			if ch.ID == id && !ch.IsInvoiced {
				editCharge = ch
			}
		}
	}
	var editPayment models.Payment
	if id := c.Query("editPayment"); id != "" {
		for _, p := range sess.Reservation.Payments {
			if p.ID == id && !p.IsInvoiced {
				editPayment = p
				editPayment.PaidAt = utils.DateOnly(p.PaidAt)
			}
		}
	}

	data := gin.H{
		"Reservation": sess.Reservation,
		"CheckIn":     utils.DateOnly(sess.Reservation.CheckIn),
		"CheckOut":    utils.DateOnly(sess.Reservation.CheckOut),
		"Methods":     sess.Methods,
		"Statuses":    models.ReservationStatuses,
		"GuestRoles":  models.GuestRoles,
		"ChargeTypes": models.ChargeTypes,
		"PayTypes":    models.PaymentTypes,
		"PayStatuses": models.PaymentStatuses,
		"Plan":        services.InvoicePlan{Reservation: sess.Reservation},
		"EditGuest":   editGuest,
		"EditCharge":  editCharge,
		"EditPayment": editPayment,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(status, "reservation_edit.html", view(c, data))
}

// reopenWithError refetches the aggregate and shows the failure inline, the
// session stays open for retry.
func reopenWithError(c *gin.Context, id string, err error) {
	if domain.IsUnauthenticated(err) {
		app.Store.Clear(c)
		c.Redirect(http.StatusFound, "/login?logged_out=1")
		return
	}
	sess, openErr := editor(c).Open(c.Request.Context(), id)
	if openErr != nil {
		renderError(c, "dashboard.html", nil, openErr)
		return
	}
	renderReservation(c, errStatus(err), sess, domain.UserMessage(err))
}

// POST /reservations/:id
func UpdateReservation(c *gin.Context) {
	id := c.Param("id")

	checkIn, checkOut := services.ApplyDates(c.PostForm("checkIn"), c.PostForm("checkOut"), c.PostForm("changedDate"))
	form := services.UpdateForm{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Note:      c.PostForm("note"),
		RoomID:    c.PostForm("roomId"),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    c.PostForm("status"),
	}

	if err := editor(c).Update(c.Request.Context(), id, form); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard?msg="+msgSaved)
}

// POST /reservations/:id/cancel
func CancelReservation(c *gin.Context) {
	id := c.Param("id")
	if err := editor(c).Cancel(c.Request.Context(), id); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard?msg="+msgCancelled)
}

// POST /reservations/:id/guests
func SaveGuest(c *gin.Context) {
	id := c.Param("id")
	g := models.Guest{
		ID:                 c.PostForm("guestId"),
		ReservationID:      id,
		FirstName:          c.PostForm("firstName"),
		LastName:           c.PostForm("lastName"),
		Role:               c.PostForm("role"),
		BirthDate:          c.PostForm("birthDate"),
		BirthCity:          c.PostForm("birthCity"),
		Citizenship:        c.PostForm("citizenship"),
		CityOfResidence:    c.PostForm("cityOfResidence"),
		TaxCode:            c.PostForm("taxCode"),
		Address:            c.PostForm("address"),
		Province:           c.PostForm("province"),
		PostalCode:         c.PostForm("postalCode"),
		DocumentType:       c.PostForm("documentType"),
		DocumentNumber:     c.PostForm("documentNumber"),
		DocumentExpiration: c.PostForm("documentExpiration"),
	}

	if err := editor(c).SaveGuest(c.Request.Context(), g); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// GET /reservations/:id/guests/:guestId/delete
func ConfirmDeleteGuest(c *gin.Context) {
	id := c.Param("id")
	detail, err := editor(c).Refresh(c.Request.Context(), id)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}
	name := "guest"
	for _, g := range detail.Guests {
		if g.ID == c.Param("guestId") {
			name = g.DisplayName()
		}
	}
	c.HTML(http.StatusOK, "confirm_delete.html", view(c, gin.H{
		"What":   name,
		"Action": "/reservations/" + id + "/guests/" + c.Param("guestId") + "/delete",
		"Back":   "/reservations/" + id,
	}))
}

// POST /reservations/:id/guests/:guestId/delete
func DeleteGuest(c *gin.Context) {
	id := c.Param("id")
	if err := editor(c).DeleteGuest(c.Request.Context(), c.Param("guestId")); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// POST /reservations/:id/charges
func SaveCharge(c *gin.Context) {
	id := c.Param("id")

	unitPrice, err := utils.ParseAmount(c.PostForm("unitPrice"))
	if err != nil {
		reopenWithError(c, id, domain.ValidationError{Field: "unitPrice", Msg: "invalid amount"})
		return
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(c.PostForm("quantity")))
	if err != nil {
		reopenWithError(c, id, domain.ValidationError{Field: "quantity", Msg: "invalid number"})
		return
	}
	vatRate := 0.0
	if raw := strings.TrimSpace(c.PostForm("vatRate")); raw != "" {
		vatRate, err = utils.ParseAmount(raw)
		if err != nil {
			reopenWithError(c, id, domain.ValidationError{Field: "vatRate", Msg: "invalid rate"})
			return
		}
	}

	charge := models.Charge{
		ID:            c.PostForm("chargeId"),
		ReservationID: id,
		Description:   c.PostForm("description"),
		Type:          c.PostForm("type"),
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		VatRate:       vatRate,
	}
	if err := editor(c).SaveCharge(c.Request.Context(), charge); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// GET /reservations/:id/charges/:chargeId/delete
func ConfirmDeleteCharge(c *gin.Context) {
	id := c.Param("id")
	detail, err := editor(c).Refresh(c.Request.Context(), id)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}
	what := "charge"
	for _, ch := range detail.Charges {
		if ch.ID == c.Param("chargeId") {
			what = ch.Description + " (" + utils.FormatEuro(ch.Total()) + ")"
		}
	}
	c.HTML(http.StatusOK, "confirm_delete.html", view(c, gin.H{
		"What":   what,
		"Action": "/reservations/" + id + "/charges/" + c.Param("chargeId") + "/delete",
		"Back":   "/reservations/" + id,
	}))
}

// POST /reservations/:id/charges/:chargeId/delete
func DeleteCharge(c *gin.Context) {
	id := c.Param("id")
	if err := editor(c).DeleteCharge(c.Request.Context(), c.Param("chargeId")); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// POST /reservations/:id/payments
func SavePayment(c *gin.Context) {
	id := c.Param("id")

	amount, err := utils.ParseAmount(c.PostForm("amount"))
	if err != nil {
		reopenWithError(c, id, domain.ValidationError{Field: "amount", Msg: "invalid amount"})
		return
	}
	form := services.PaymentForm{
		ID:              c.PostForm("paymentId"),
		ReservationID:   id,
		Amount:          amount,
		Type:            c.PostForm("type"),
		Status:          c.PostForm("status"),
		PaymentMethodID: c.PostForm("paymentMethodId"),
		PaidAt:          c.PostForm("paidAt"),
	}
	if err := editor(c).SavePayment(c.Request.Context(), form); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// GET /reservations/:id/payments/:paymentId/delete
func ConfirmDeletePayment(c *gin.Context) {
	id := c.Param("id")
	detail, err := editor(c).Refresh(c.Request.Context(), id)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}
	what := "payment"
	for _, p := range detail.Payments {
		if p.ID == c.Param("paymentId") {
			what = p.Type + " payment of " + utils.FormatEuro(p.Amount)
		}
	}
	c.HTML(http.StatusOK, "confirm_delete.html", view(c, gin.H{
		"What":   what,
		"Action": "/reservations/" + id + "/payments/" + c.Param("paymentId") + "/delete",
		"Back":   "/reservations/" + id,
	}))
}

// POST /reservations/:id/payments/:paymentId/delete
func DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if err := editor(c).DeletePayment(c.Request.Context(), c.Param("paymentId")); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// POST /reservations/:id/invoices
func CreateInvoice(c *gin.Context) {
	id := c.Param("id")
	ed := editor(c)

	detail, err := ed.Refresh(c.Request.Context(), id)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}

	includeRoom := c.PostForm("includeRoom") == "on" || c.PostForm("includeRoom") == "true"
	roomPrice := 0.0
	if includeRoom {
		roomPrice, err = ed.RoomPrice(c.Request.Context(), detail.RoomID)
		if err != nil {
			reopenWithError(c, id, err)
			return
		}
	}

	plan := services.InvoicePlan{
		Reservation:        detail,
		RoomPrice:          roomPrice,
		IncludeRoom:        includeRoom,
		SelectedChargeIDs:  c.PostFormArray("chargeIds"),
		SelectedPaymentIDs: c.PostFormArray("paymentIds"),
		Customer: models.InvoiceCustomer{
			FirstName: c.PostForm("customerFirstName"),
			LastName:  c.PostForm("customerLastName"),
			TaxCode:   c.PostForm("customerTaxCode"),
			Address:   c.PostForm("customerAddress"),
		},
	}
	if _, err := ed.CreateInvoice(c.Request.Context(), plan); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// POST /reservations/:id/invoices/:invoiceId/cancel
func CancelInvoice(c *gin.Context) {
	id := c.Param("id")
	if err := editor(c).CancelInvoice(c.Request.Context(), c.Param("invoiceId")); err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Redirect(http.StatusFound, "/reservations/"+id)
}

// GET /reservations/:id/invoices/:invoiceId/pdf
//
// The server's invoice PDF streamed through inline; the browser never talks
// to the API origin directly.
func InvoicePDF(c *gin.Context) {
	raw, contentType, err := gateway.InvoiceGateway{Client: client(c)}.PDF(c.Request.Context(), c.Param("invoiceId"))
	if err != nil {
		reopenWithError(c, c.Param("id"), err)
		return
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `inline; filename="invoice-`+c.Param("invoiceId")+`.pdf"`)
	c.Data(http.StatusOK, contentType, raw)
}

// GET /reservations/:id/summary.pdf
func ReservationSummaryPDF(c *gin.Context) {
	id := c.Param("id")
	detail, err := editor(c).Refresh(c.Request.Context(), id)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	raw, filename, err := docs.GenerateReservationSummary(detail)
	if err != nil {
		reopenWithError(c, id, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}

const (
	msgSaved     = "Reservation+saved"
	msgCancelled = "Reservation+cancelled"
)
