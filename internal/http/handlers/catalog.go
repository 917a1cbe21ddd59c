package handlers

import (
	"net/http"
	"strconv"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/http/middleware"
	"travelapi/internal/repositories"
	"travelapi/internal/services"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// Catalog handlers cover both packages and tours: the kind picks the table
// and the public image directory, everything else is identical.

// parseCatalogForm validates the multipart create/update form server-side,
// regardless of any client-side schema checks.
func parseCatalogForm(c *gin.Context) (models.TravelItem, error) {
	var it models.TravelItem

	it.Title = utils.NormalizeSpace(c.PostForm("title"))
	if it.Title == "" {
		return it, domain.ValidationError{Field: "title", Msg: "is required"}
	}
	it.Slug = utils.MakeSlug(it.Title)
	if it.Slug == "" {
		return it, domain.ValidationError{Field: "title", Msg: "must contain letters or digits"}
	}

	categoryID, err := strconv.ParseInt(utils.TrimOrEmpty(c.PostForm("category_id")), 10, 64)
	if err != nil || categoryID <= 0 {
		return it, domain.ValidationError{Field: "category_id", Msg: "is required"}
	}
	it.CategoryID = categoryID

	price, err := strconv.ParseFloat(utils.TrimOrEmpty(c.PostForm("price")), 64)
	if err != nil || price <= 0 {
		return it, domain.ValidationError{Field: "price", Msg: "must be a number greater than zero"}
	}
	it.Price = price

	days, err := strconv.Atoi(utils.TrimOrEmpty(c.PostForm("duration_days")))
	if err != nil || days < 1 {
		return it, domain.ValidationError{Field: "duration_days", Msg: "must be an integer of at least 1"}
	}
	it.DurationDays = days

	it.ShortDescription = utils.TrimOrEmpty(c.PostForm("short_description"))
	it.Description = utils.TrimOrEmpty(c.PostForm("description"))

	it.Status = utils.TrimOrEmpty(c.PostForm("status"))
	if it.Status == "" {
		it.Status = models.StatusActive
	}
	if !models.ValidStatus(it.Status) {
		return it, domain.ValidationError{Field: "status", Msg: "must be active or inactive"}
	}

	return it, nil
}

func imageStore(c *gin.Context) services.ImageStore {
	return services.ImageStore{Root: imageRoot, RequestID: middleware.GetRequestID(c)}
}

// GET /api/admin/{packages,tours} — joined with category name, newest first.
// Empty tables yield 200 + [].
func AdminListCatalog(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pagination(c)
		list, err := (repositories.CatalogRepository{Kind: kind}).ListAdmin(page, limit)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/admin/{packages,tours}/:id
func AdminGetCatalogItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := idParam(c)
		if id == 0 {
			RespondError(c, http.StatusBadRequest, "invalid ID", nil)
			return
		}
		it, err := (repositories.CatalogRepository{Kind: kind}).GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// POST /api/admin/{packages,tours} — multipart form with optional image.
func CreateCatalogItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := parseCatalogForm(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		store := imageStore(c)
		if file, ferr := c.FormFile("image"); ferr == nil {
			name, serr := store.Save(kind, file)
			if serr != nil {
				RespondDomainError(c, serr)
				return
			}
			it.Image = name
		}

		id, err := (repositories.CatalogRepository{Kind: kind}).Create(it)
		if err != nil {
			store.Remove(kind, it.Image)
			RespondDomainError(c, err)
			return
		}
		utils.LogEvent(middleware.GetRequestID(c), string(kind), "create", "slug="+it.Slug)
		it.ID = id
		c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "slug": it.Slug})
	}
}

// PUT /api/admin/{packages,tours}/:id — slug recomputed from the new title;
// image only replaced when a nonzero upload is present, and the old file is
// removed best-effort after a successful replace.
func UpdateCatalogItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := idParam(c)
		if id == 0 {
			RespondError(c, http.StatusBadRequest, "invalid ID", nil)
			return
		}

		repo := repositories.CatalogRepository{Kind: kind}
		existing, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		it, err := parseCatalogForm(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		it.ID = id

		store := imageStore(c)
		imageChanged := false
		if file, ferr := c.FormFile("image"); ferr == nil && file != nil && file.Size > 0 {
			name, serr := store.Save(kind, file)
			if serr != nil {
				RespondDomainError(c, serr)
				return
			}
			it.Image = name
			imageChanged = true
		}

		if err := repo.Update(it, imageChanged); err != nil {
			if imageChanged {
				store.Remove(kind, it.Image)
			}
			RespondDomainError(c, err)
			return
		}
		if imageChanged && existing.Image != "" {
			store.Remove(kind, existing.Image)
		}
		utils.LogEvent(middleware.GetRequestID(c), string(kind), "update", "slug="+it.Slug)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /api/admin/{packages,tours}/:id — the row owns its image file, so
// the file goes with it (best-effort).
func DeleteCatalogItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := idParam(c)
		if id == 0 {
			RespondError(c, http.StatusBadRequest, "invalid ID", nil)
			return
		}

		repo := repositories.CatalogRepository{Kind: kind}
		existing, err := repo.GetByID(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if err := repo.Delete(id); err != nil {
			RespondDomainError(c, err)
			return
		}
		imageStore(c).Remove(kind, existing.Image)
		utils.LogEvent(middleware.GetRequestID(c), string(kind), "delete", "slug="+existing.Slug)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /api/{packages,tours} — public active-only projection.
func PublicListCatalog(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := (repositories.CatalogRepository{Kind: kind}).ListPublicActive()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/{packages,tours}/:slug — 404 when missing or inactive.
func PublicGetCatalogBySlug(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := utils.TrimOrEmpty(c.Param("slug"))
		if slug == "" {
			RespondError(c, http.StatusBadRequest, "slug is required", nil)
			return
		}
		it, err := (repositories.CatalogRepository{Kind: kind}).GetBySlugActive(slug)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}
