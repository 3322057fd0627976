package services

import (
	"bytes"
	"fmt"
	"strings"

	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders a printable PDF voucher for one booking.
type VoucherService struct {
	Bookings  repositories.BookingRepository
	RequestID string
	// Loader overrides the repository lookup, used by tests.
	Loader func(int64) (repositories.BookingVoucher, error)
}

func (s VoucherService) Generate(bookingID int64) ([]byte, string, error) {
	data, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(data)
}

func (s VoucherService) load(bookingID int64) (repositories.BookingVoucher, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.Bookings.GetVoucher(bookingID)
}

func buildVoucherPDF(v repositories.BookingVoucher) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : #%d", v.ID),
		fmt.Sprintf("Customer       : %s", safe(v.Customer, "-")),
		fmt.Sprintf("Item           : %s (%s)", safe(v.ItemName, "-"), safe(v.ItemRef, "-")),
		fmt.Sprintf("Transport      : %s", safe(v.Transport, "-")),
		fmt.Sprintf("Lodging        : %s", safe(v.Lodging, "-")),
		fmt.Sprintf("Payment status : %s", safe(v.PaymentStatus, "-")),
		fmt.Sprintf("Price          : %s", utils.FormatMoney(v.Price)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", v.ID, filenamePart(v.Customer))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func filenamePart(s string) string {
	var out strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "booking"
	}
	return out.String()
}
