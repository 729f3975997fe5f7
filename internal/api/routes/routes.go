package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/api/handlers"
	"github.com/lkcs/lkcs-backend/internal/api/middleware"
	"github.com/lkcs/lkcs-backend/internal/services"
)

type Deps struct {
	Application *handlers.ApplicationHandler
	Enquiry     *handlers.EnquiryHandler
	Event       *handlers.EventHandler
	Gallery     *handlers.GalleryHandler
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler

	AuthSvc   services.AuthService
	ImagesDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", d.Health.Check)

	// Gallery images only; resume downloads stay gated behind the
	// applications router so the original filename can be restored.
	r.Static("/uploads/images", d.ImagesDir)

	admin := middleware.AdminAuth(d.AuthSvc)

	r.POST("/api/auth/login", d.Auth.Login)

	apps := r.Group("/api/applications")
	apps.POST("", d.Application.Create)
	apps.GET("", admin, d.Application.List)
	apps.GET("/:id/resume", admin, d.Application.Resume)
	apps.DELETE("/:id", admin, d.Application.Delete)

	enquiries := r.Group("/api/enquiries")
	enquiries.POST("", d.Enquiry.Create)
	enquiries.GET("", admin, d.Enquiry.List)
	enquiries.DELETE("/:id", admin, d.Enquiry.Delete)

	events := r.Group("/api/events")
	events.GET("", d.Event.List)
	events.POST("", admin, d.Event.Create)
	events.PUT("/:id", admin, d.Event.Update)
	events.DELETE("/:id", admin, d.Event.Delete)

	gallery := r.Group("/api/gallery")
	gallery.GET("", d.Gallery.List)
	gallery.POST("", admin, d.Gallery.Create)
	gallery.DELETE("/:id", admin, d.Gallery.Delete)
}
