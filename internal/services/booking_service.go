package services

import (
	"fmt"
	"strings"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"
)

// BookingInput carries the public booking-form fields. Tags follow the legacy
// form payload, which used camelCase keys.
type BookingInput struct {
	BookingType string `json:"bookingType"`
	ItemID      int64  `json:"itemId"`
	ItemTitle   string `json:"itemTitle"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TravelDate  string `json:"travelDate"`
	Travelers   int    `json:"travelers"`
	Message     string `json:"message"`
}

// BookingService validates and persists public booking submissions. The
// notification mail is best-effort: persistence succeeds independently of it.
type BookingService struct {
	Repo      repositories.BookingRepository
	Mailer    Mailer
	RequestID string
}

// Create inserts the booking with status "new" and fires the notification.
func (s BookingService) Create(in BookingInput) (models.Booking, error) {
	b := models.Booking{
		BookingType: utils.TrimOrEmpty(in.BookingType),
		ItemID:      in.ItemID,
		ItemTitle:   utils.TrimOrEmpty(in.ItemTitle),
		FullName:    utils.TrimOrEmpty(in.FullName),
		Email:       utils.TrimOrEmpty(in.Email),
		Phone:       utils.TrimOrEmpty(in.Phone),
		TravelDate:  utils.TrimOrEmpty(in.TravelDate),
		Travelers:   in.Travelers,
		Message:     strings.TrimSpace(in.Message),
		Status:      models.BookingStatusNew,
	}

	if err := validateBooking(b); err != nil {
		return b, err
	}
	if b.Travelers <= 0 {
		b.Travelers = 1
	}

	id, err := s.Repo.Insert(b)
	if err != nil {
		return b, err
	}
	b.ID = id
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%d type=%s", id, b.BookingType))

	if s.Mailer != nil {
		if err := s.Mailer.SendBookingNotification(b); err != nil {
			// Mail failure must never fail the booking.
			utils.LogEvent(s.RequestID, "booking", "notify_failed", err.Error())
		}
	}
	return b, nil
}

func validateBooking(b models.Booking) error {
	required := []struct {
		field, value string
	}{
		{"bookingType", b.BookingType},
		{"itemTitle", b.ItemTitle},
		{"fullName", b.FullName},
		{"email", b.Email},
		{"phone", b.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.ValidationError{Field: f.field, Msg: "is required"}
		}
	}
	if !models.ValidBookingType(b.BookingType) {
		return domain.ValidationError{Field: "bookingType", Msg: "must be package, tour or custom"}
	}
	if b.TravelDate != "" {
		if _, err := utils.ParseDate(b.TravelDate); err != nil {
			return domain.ValidationError{Field: "travelDate", Msg: "must be YYYY-MM-DD"}
		}
	}
	return nil
}

// SetStatus is the raw admin update: membership in the status set is the only
// check, transitions are unconstrained. An unknown id is a silent no-op.
func (s BookingService) SetStatus(id int64, status string) error {
	if !models.ValidBookingStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "invalid booking status"}
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "set_status", fmt.Sprintf("id=%d status=%s", id, status))
	return nil
}

// Transition is the guarded update: the move must follow the lifecycle graph.
func (s BookingService) Transition(id int64, status string) (models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "invalid booking status"}
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return b, err
	}
	if !models.CanTransition(b.Status, status) {
		return b, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot move from %s to %s", b.Status, status),
		}
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return b, err
	}
	b.Status = status
	utils.LogEvent(s.RequestID, "booking", "transition", fmt.Sprintf("id=%d status=%s", id, status))
	return b, nil
}
