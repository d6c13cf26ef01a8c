package models

// Reservation status values mirror the hotel API enum. The client never
// enforces a transition graph; any value may be submitted and the server
// decides legality.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusCancelled  = "Cancelled"
	StatusCheckedIn  = "CheckedIn"
	StatusCheckedOut = "CheckedOut"
)

var ReservationStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCheckedIn,
	StatusCheckedOut,
}

type ReservationList struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	RoomID       string `json:"roomId"`
	RoomNumber   string `json:"roomNumber"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Status       string `json:"status"`
}

// ReservationDetail is the full aggregate: one reservation plus its dependent
// guests, charges, payments and invoices, fetched wholesale on every refresh.
type ReservationDetail struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	RoomID          string    `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Status          string    `json:"status"`
	Note            string    `json:"note,omitempty"`
	PaymentStatus   string    `json:"paymentStatus"`
	RemainingAmount float64   `json:"remainingAmount"`
	Guests          []Guest   `json:"guests"`
	Payments        []Payment `json:"payments"`
	Charges         []Charge  `json:"charges"`
	Invoices        []Invoice `json:"invoices"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       string    `json:"createdAt,omitempty"`
	UpdatedBy       string    `json:"updatedBy,omitempty"`
	UpdatedAt       string    `json:"updatedAt,omitempty"`
}

type CreateReservation struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Note      string `json:"note,omitempty"`
}

type UpdateReservation struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	RoomID    string `json:"roomId,omitempty"`
	CheckIn   string `json:"checkIn,omitempty"`
	CheckOut  string `json:"checkOut,omitempty"`
	Note      string `json:"note,omitempty"`
	Status    string `json:"status,omitempty"`
}

type ReservationSearch struct {
	CustomerName string `json:"customerName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	RoomID       string `json:"roomId,omitempty"`
	Status       string `json:"status,omitempty"`
	FromDate     string `json:"fromDate,omitempty"`
	ToDate       string `json:"toDate,omitempty"`
}
