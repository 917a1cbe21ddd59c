package handlers

import (
	"net/http"

	"travelapi/internal/http/middleware"
	"travelapi/internal/repositories"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:      repositories.BookingRepository{},
		Mailer:    mailer,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings — public intake. The notification email is best-effort
// and can never fail the insert.
func CreateBooking(c *gin.Context) {
	var req services.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": booking.ID})
}

// GET /api/admin/bookings — newest first, 200 + [] when empty.
func GetBookings(c *gin.Context) {
	page, limit := pagination(c)
	list, err := repositories.BookingRepository{}.List(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type bookingStatusPayload struct {
	Status string `json:"status"`
}

// PUT /api/admin/bookings/:id — raw status set. Only membership in the status
// set is checked; the transition graph is not (admin override surface).
func UpdateBookingStatus(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking ID", nil)
		return
	}
	var req bookingStatusPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).SetStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/admin/bookings/:id/transition — guarded move along the lifecycle
// graph; an illegal move returns 409.
func TransitionBookingStatus(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking ID", nil)
		return
	}
	var req bookingStatusPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).Transition(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// GET /api/admin/bookings/:id/voucher — PDF download.
func GetBookingVoucherPDF(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking ID", nil)
		return
	}

	svc := services.VoucherService{
		Repo:      repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
