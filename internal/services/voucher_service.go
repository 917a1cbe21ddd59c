package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders a booking voucher PDF for the admin back office.
// Loader can be injected in tests to skip the DB.
type VoucherService struct {
	Repo      repositories.BookingRepository
	RequestID string
	Loader    func(int64) (models.Booking, error)
}

func (s VoucherService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(b)
}

func (s VoucherService) loadBooking(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Repo.GetByID(id)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref  : BKG-%d", b.ID),
		fmt.Sprintf("Item         : %s", safe(b.ItemTitle, "-")),
		fmt.Sprintf("Type         : %s", safe(b.BookingType, "-")),
		fmt.Sprintf("Guest        : %s", safe(b.FullName, "-")),
		fmt.Sprintf("Email        : %s", safe(b.Email, "-")),
		fmt.Sprintf("Phone        : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Travel Date  : %s", safe(b.TravelDate, "not specified")),
		fmt.Sprintf("Travelers    : %d", b.Travelers),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
		fmt.Sprintf("Submitted    : %s", safe(b.CreatedAt, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.Message) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Customer Message:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, b.Message, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04")+". This voucher is for internal reference.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", b.ID, safeFilenamePart(b.FullName))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
