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

type categoryPayload struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

func (p categoryPayload) toModel(id int64) (models.Category, error) {
	name := utils.NormalizeSpace(p.Name)
	if name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}

	catType := utils.TrimOrEmpty(p.Type)
	if catType == "" {
		catType = models.CategoryTypeBoth
	}
	if !models.ValidCategoryType(catType) {
		return models.Category{}, domain.ValidationError{Field: "type", Msg: "must be tour, package or both"}
	}

	status := utils.TrimOrEmpty(p.Status)
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatus(status) {
		return models.Category{}, domain.ValidationError{Field: "status", Msg: "must be active or inactive"}
	}

	return models.Category{
		ID:     id,
		Name:   name,
		Slug:   utils.MakeSlug(name),
		Type:   catType,
		Status: status,
	}, nil
}

// GET /api/admin/categories
func GetCategories(c *gin.Context) {
	page, limit := pagination(c)
	list, err := repositories.CategoryRepository{}.List(page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/categories/:id
func GetCategoryByID(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid category ID", nil)
		return
	}
	cat, err := repositories.CategoryRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// POST /api/admin/categories
func CreateCategory(c *gin.Context) {
	var req categoryPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	cat, err := req.toModel(0)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.CategoryRepository{}.Create(cat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "category", "create", "slug="+cat.Slug)
	cat.ID = id
	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat})
}

// PUT /api/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid category ID", nil)
		return
	}
	var req categoryPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	cat, err := req.toModel(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.CategoryRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(cat); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "category", "update", "slug="+cat.Slug)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/admin/categories/:id — 409 when packages/tours still reference it.
func DeleteCategory(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid category ID", nil)
		return
	}
	if err := (repositories.CategoryRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "category", "delete", "")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PublicCategories serves /api/categories/packages and /api/categories/tours:
// active categories whose type matches the kind or is "both".
func PublicCategories(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repositories.CategoryRepository{}.ListPublicByType(kind)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
