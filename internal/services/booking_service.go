package services

import (
	"context"
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// BookingService backs the customer-facing flow: find rooms free for a date
// range and create a reservation against one.
type BookingService struct {
	Rooms        gateway.RoomGateway
	Reservations gateway.ReservationGateway
	RequestID    string
}

// AvailabilityResult ties the room list to the exact query that produced it,
// so a date change invalidates stale results instead of showing them.
type AvailabilityResult struct {
	CheckIn  string
	CheckOut string
	Rooms    []models.RoomList
}

// SearchAvailability requires both dates in order. The displayed room list is
// replaced wholesale by the server's answer.
func (s BookingService) SearchAvailability(ctx context.Context, checkIn, checkOut string) (AvailabilityResult, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return AvailabilityResult{}, domain.ValidationError{Msg: "Both check-in and check-out dates are required"}
	}
	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return AvailabilityResult{}, domain.ValidationError{Field: "checkIn", Msg: "invalid date"}
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return AvailabilityResult{}, domain.ValidationError{Field: "checkOut", Msg: "invalid date"}
	}
	if co.Before(ci) {
		return AvailabilityResult{}, domain.ValidationError{Msg: "Check-out cannot precede check-in"}
	}

	utils.LogEvent(s.RequestID, "booking", "search_availability", checkIn+".."+checkOut)
	rooms, err := s.Rooms.Available(ctx, checkIn, checkOut)
	if err != nil {
		return AvailabilityResult{}, err
	}
	return AvailabilityResult{CheckIn: checkIn, CheckOut: checkOut, Rooms: rooms}, nil
}

// BookingForm carries the contact the customer typed, or the session
// identity pre-fill. Dates come fixed from the prior availability search.
type BookingForm struct {
	RoomID    string
	CheckIn   string
	CheckOut  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Note      string
}

func (s BookingService) Book(ctx context.Context, form BookingForm) (models.ReservationDetail, error) {
	if form.RoomID == "" {
		return models.ReservationDetail{}, domain.ValidationError{Field: "roomId", Msg: "required"}
	}
	if strings.TrimSpace(form.FirstName) == "" || strings.TrimSpace(form.LastName) == "" {
		return models.ReservationDetail{}, domain.ValidationError{Msg: "First and last name are required"}
	}
	if strings.TrimSpace(form.Email) == "" {
		return models.ReservationDetail{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if _, err := utils.ParseDate(form.CheckIn); err != nil {
		return models.ReservationDetail{}, domain.ValidationError{Field: "checkIn", Msg: "invalid date"}
	}
	if _, err := utils.ParseDate(form.CheckOut); err != nil {
		return models.ReservationDetail{}, domain.ValidationError{Field: "checkOut", Msg: "invalid date"}
	}

	utils.LogEvent(s.RequestID, "booking", "create", "room_id="+form.RoomID)
	return s.Reservations.Create(ctx, models.CreateReservation{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		RoomID:    form.RoomID,
		CheckIn:   utils.ToISO(form.CheckIn),
		CheckOut:  utils.ToISO(form.CheckOut),
		Note:      form.Note,
	})
}
