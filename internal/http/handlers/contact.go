package handlers

import (
	"net/http"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/http/middleware"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Package string `json:"package"`
	Message string `json:"message"`
}

// POST /api/contact — public inquiry intake.
func CreateContactQuery(c *gin.Context) {
	var req contactPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	q := models.ContactQuery{
		Name:    utils.NormalizeSpace(req.Name),
		Email:   utils.TrimOrEmpty(req.Email),
		Phone:   utils.TrimOrEmpty(req.Phone),
		Package: utils.TrimOrEmpty(req.Package),
		Message: utils.TrimOrEmpty(req.Message),
	}
	for _, f := range []struct{ field, value string }{
		{"name", q.Name}, {"email", q.Email}, {"message", q.Message},
	} {
		if f.value == "" {
			RespondDomainError(c, domain.ValidationError{Field: f.field, Msg: "is required"})
			return
		}
	}

	id, err := repositories.ContactRepository{}.Insert(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "contact", "create", "")
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// GET /api/admin/contact — all inquiries, newest first.
func GetContactQueries(c *gin.Context) {
	page, limit := pagination(c)
	list, err := repositories.ContactRepository{}.List(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
