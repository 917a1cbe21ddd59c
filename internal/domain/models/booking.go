package models

// Booking is a customer's request to reserve a package, a tour, or a custom trip.
type Booking struct {
	ID          int64  `json:"id"`
	BookingType string `json:"booking_type"`
	ItemID      int64  `json:"item_id,omitempty"`
	ItemTitle   string `json:"item_title"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TravelDate  string `json:"travel_date,omitempty"`
	Travelers   int    `json:"travelers"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

const (
	BookingTypePackage = "package"
	BookingTypeTour    = "tour"
	BookingTypeCustom  = "custom"

	BookingStatusNew       = "new"
	BookingStatusContacted = "contacted"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingType reports whether t is a recognized booking type.
func ValidBookingType(t string) bool {
	return t == BookingTypePackage || t == BookingTypeTour || t == BookingTypeCustom
}

// ValidBookingStatus reports whether s is a member of the status set. The raw
// status update endpoint checks only this, never the transition graph.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusNew, BookingStatusContacted, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// bookingTransitions is the guarded lifecycle:
//
//	new -> contacted -> confirmed -> completed
//	new | contacted | confirmed -> cancelled
var bookingTransitions = map[string][]string{
	BookingStatusNew:       {BookingStatusContacted, BookingStatusCancelled},
	BookingStatusContacted: {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether the guarded endpoint may move a booking from
// one status to another. Completed and cancelled are terminal.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
