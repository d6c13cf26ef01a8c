package models

// ReservationBar is one reservation clamped to the requested calendar range.
type ReservationBar struct {
	ReservationID     string `json:"reservationId"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	GuestName         string `json:"guestName"`
	Status            string `json:"status"`
	StartsBeforeRange bool   `json:"startsBeforeRange"`
	EndsAfterRange    bool   `json:"endsAfterRange"`
}

type RoomCalendar struct {
	RoomID       string           `json:"roomId"`
	RoomNumber   string           `json:"roomNumber"`
	RoomName     string           `json:"roomName"`
	RoomPrice    float64          `json:"roomPrice"`
	Reservations []ReservationBar `json:"reservations"`
}
