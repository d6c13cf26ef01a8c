package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// DocsService renders the front-desk reservation summary PDF. Invoices stay
// server-rendered; this printout is a client-side convenience only.
type DocsService struct {
	RequestID string
}

func (s DocsService) GenerateReservationSummary(detail models.ReservationDetail) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_summary", "reservation_id="+detail.ID)
	return buildSummaryPDF(detail)
}

func buildSummaryPDF(d models.ReservationDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reservation Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RESERVATION SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest        : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Email        : %s", safe(d.Email, "-")),
		fmt.Sprintf("Phone        : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Room         : %s", safe(d.RoomNumber, "-")),
		fmt.Sprintf("Check-in     : %s", safe(utils.DateOnly(d.CheckIn), "-")),
		fmt.Sprintf("Check-out    : %s", safe(utils.DateOnly(d.CheckOut), "-")),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(d.Charges) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Charges")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		total := 0.0
		for _, c := range d.Charges {
			amount := c.Total()
			total += amount
			pdf.Cell(0, 6, fmt.Sprintf("%-12s %-28s %2d x %8s = %10s",
				c.Type, truncate(c.Description, 28), c.Quantity, utils.FormatMoney(c.UnitPrice), utils.FormatMoney(amount)))
			pdf.Ln(6)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Charges total: %s", utils.FormatMoney(models.RoundMoney(total))))
		pdf.Ln(8)
	}

	if len(d.Payments) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Payments")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range d.Payments {
			pdf.Cell(0, 6, fmt.Sprintf("%-10s %-10s %10s", p.Type, p.Status, utils.FormatMoney(p.Amount)))
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining amount: %s", utils.FormatMoney(d.RemainingAmount)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This summary is informational and is not a fiscal document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("reservation-%s-summary.pdf", safeFilenamePart(d.ID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "-")
	return replacer.Replace(s)
}
