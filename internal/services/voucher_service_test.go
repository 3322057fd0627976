package services

import (
	"strings"
	"testing"

	"backend/internal/repositories"
)

func TestVoucherServiceGenerate(t *testing.T) {
	loader := func(id int64) (repositories.BookingVoucher, error) {
		return repositories.BookingVoucher{
			ID:            id,
			Customer:      "Ana Torres",
			ItemRef:       "trip-5",
			ItemName:      "Andes Trek",
			Price:         499.0,
			Transport:     "bus",
			Lodging:       "Hotel Azul",
			PaymentStatus: "pending",
		}, nil
	}

	svc := VoucherService{Loader: loader}

	pdf, filename, err := svc.Generate(7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("Generate returned empty data")
	}
	if !strings.HasPrefix(filename, "VOUCHER_7_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestFilenamePartStripsUnsafeRunes(t *testing.T) {
	if got := filenamePart("Ana Torres / #1"); got != "Ana_Torres____1" {
		t.Fatalf("unexpected filename part: %q", got)
	}
	if got := filenamePart("  "); got != "booking" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
