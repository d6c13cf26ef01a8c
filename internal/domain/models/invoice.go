package models

const (
	InvoiceStatusDraft     = "Draft"
	InvoiceStatusIssued    = "Issued"
	InvoiceStatusCancelled = "Cancelled"
)

// Invoice is immutable after creation except for cancellation; numbering is
// assigned server-side.
type Invoice struct {
	ID              string           `json:"id"`
	ReservationID   string           `json:"reservationId"`
	InvoiceNumber   string           `json:"invoiceNumber,omitempty"`
	Status          string           `json:"status,omitempty"`
	TotalAmount     float64          `json:"totalAmount,omitempty"`
	BalanceDue      float64          `json:"balanceDue,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	Items           []InvoiceItem    `json:"items,omitempty"`
	InvoicePayments []InvoicePayment `json:"invoicePayments,omitempty"`
}

type InvoiceItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	VatRate     float64 `json:"vatRate"`
}

type InvoicePayment struct {
	PaymentID     string  `json:"paymentId"`
	AmountApplied float64 `json:"amountApplied"`
}

type InvoiceCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	TaxCode   string `json:"taxCode,omitempty"`
	VatNumber string `json:"vatNumber,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

type CreateInvoiceRequest struct {
	ReservationID string           `json:"reservationId"`
	Customer      *InvoiceCustomer `json:"customer,omitempty"`
	Items         []InvoiceItem    `json:"items"`
}
