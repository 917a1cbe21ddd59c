package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "travelapi/internal/config"
	"travelapi/internal/domain/models"
	h "travelapi/internal/http/handlers"
	"travelapi/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Uploaded catalog images are served straight from the public static dir.
	r.Static("/images", env.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth(h.JWTSecret()), h.Me)

		// Public catalog
		api.GET("/packages", h.PublicListCatalog(models.KindPackage))
		api.GET("/packages/:slug", h.PublicGetCatalogBySlug(models.KindPackage))
		api.GET("/tours", h.PublicListCatalog(models.KindTour))
		api.GET("/tours/:slug", h.PublicGetCatalogBySlug(models.KindTour))
		api.GET("/categories/packages", h.PublicCategories(models.KindPackage))
		api.GET("/categories/tours", h.PublicCategories(models.KindTour))

		// Public intake
		api.POST("/bookings", h.CreateBooking)
		api.POST("/contact", h.CreateContactQuery)

		// Admin (everything behind the session gate)
		admin := api.Group("/admin", middleware.RequireAuth(h.JWTSecret()))
		{
			categories := admin.Group("/categories")
			categories.GET("", h.GetCategories)
			categories.GET("/:id", h.GetCategoryByID)
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)

			mountCatalog(admin.Group("/packages"), models.KindPackage)
			mountCatalog(admin.Group("/tours"), models.KindTour)

			bookings := admin.Group("/bookings")
			bookings.GET("", h.GetBookings)
			bookings.PUT("/:id", h.UpdateBookingStatus)
			bookings.PUT("/:id/transition", h.TransitionBookingStatus)
			bookings.GET("/:id/voucher", h.GetBookingVoucherPDF)

			contact := admin.Group("/contact")
			contact.GET("", h.GetContactQueries)
		}
	}

	h.SetRouter(r)
	return r
}

func mountCatalog(g *gin.RouterGroup, kind models.ItemKind) {
	g.GET("", h.AdminListCatalog(kind))
	g.GET("/:id", h.AdminGetCatalogItem(kind))
	g.POST("", h.CreateCatalogItem(kind))
	g.PUT("/:id", h.UpdateCatalogItem(kind))
	g.DELETE("/:id", h.DeleteCatalogItem(kind))
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	origins := []string{
		"http://localhost:3000", "http://127.0.0.1:3000",
		"http://localhost:5173", "http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.AllowOrigins = origins

	return cors.New(cfg)
}
