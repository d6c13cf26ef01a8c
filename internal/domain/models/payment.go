package models

const (
	PaymentTypeDeposit = "Deposit"
	PaymentTypeBalance = "Balance"
	PaymentTypeExtra   = "Extra"
)

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

var (
	PaymentTypes    = []string{PaymentTypeDeposit, PaymentTypeBalance, PaymentTypeExtra}
	PaymentStatuses = []string{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded}
)

type Payment struct {
	ID                       string  `json:"id,omitempty"`
	ReservationID            string  `json:"reservationId"`
	Amount                   float64 `json:"amount"`
	Type                     string  `json:"type"`
	Status                   string  `json:"status"`
	PaymentMethodID          string  `json:"paymentMethodId,omitempty"`
	PaymentMethodCode        string  `json:"paymentMethodCode,omitempty"`
	PaymentMethodDescription string  `json:"paymentMethodDescription,omitempty"`
	PaidAt                   string  `json:"paidAt,omitempty"`
	IsInvoiced               bool    `json:"isInvoiced,omitempty"`
}

type CreatePayment struct {
	ReservationID   string  `json:"reservationId"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	PaymentMethodID string  `json:"paymentMethodId"`
	PaidAt          string  `json:"paidAt,omitempty"`
}

type UpdatePayment struct {
	Amount          float64 `json:"amount,omitempty"`
	Type            string  `json:"type,omitempty"`
	Status          string  `json:"status,omitempty"`
	PaymentMethodID string  `json:"paymentMethodId,omitempty"`
	PaidAt          string  `json:"paidAt,omitempty"`
}

// PaymentMethod is a global catalog entry; deactivation is a soft flag flip.
type PaymentMethod struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type CreatePaymentMethod struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type UpdatePaymentMethod struct {
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
