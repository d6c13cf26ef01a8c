package models

import "math"

const (
	ChargeTypeFood        = "Food"
	ChargeTypeDrink       = "Drink"
	ChargeTypeMinibar     = "Minibar"
	ChargeTypeRoomService = "RoomService"
	ChargeTypeExtra       = "Extra"
)

var ChargeTypes = []string{
	ChargeTypeFood,
	ChargeTypeDrink,
	ChargeTypeMinibar,
	ChargeTypeRoomService,
	ChargeTypeExtra,
}

type Charge struct {
	ID            string  `json:"id,omitempty"`
	ReservationID string  `json:"reservationId"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Amount        float64 `json:"amount"`
	VatRate       float64 `json:"vatRate"`
	IsInvoiced    bool    `json:"isInvoiced"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

// Total is the displayed charge amount: unitPrice x quantity rounded to two
// decimals, independent of the order the fields were edited in.
func (c Charge) Total() float64 {
	return RoundMoney(c.UnitPrice * float64(c.Quantity))
}

// RoundMoney rounds to two decimals, half away from zero.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
