package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grampanchayat/internal/config"
	"grampanchayat/internal/domain"
	"grampanchayat/internal/handler"
	"grampanchayat/internal/middleware"
	"grampanchayat/internal/service"
)

// Handlers groups every HTTP handler mounted by Setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Village    *handler.VillageHandler
	Property   *handler.PropertyHandler
	Rate       *handler.RateHandler
	Assessment *handler.AssessmentHandler
	Stats      *handler.StatsHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, log *logrus.Logger, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	// Protected routes - require a valid session
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc, cfg.JWT.CookieName))
	protected.GET("/auth/me", h.Auth.Me)

	superAdmin := middleware.RequireRole(domain.RoleSuperAdmin)
	admins := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin)
	anyRole := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser)

	protected.GET("/dashboard/superadmin/stats", superAdmin, h.Stats.Portal)

	// Users
	users := protected.Group("/users", superAdmin)
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", h.User.Delete)
	users.GET("/:id/villages", h.User.ListVillages)
	users.POST("/:id/villages/:villageId", h.User.AssignVillage)
	users.DELETE("/:id/villages/:villageId", h.User.RemoveVillage)

	// Villages
	villages := protected.Group("/villages")
	villages.GET("", admins, h.Village.List)
	villages.POST("", superAdmin, h.Village.Create)

	village := villages.Group("/:villageId", middleware.RequireVillageAccess("villageId"))
	village.GET("", admins, h.Village.GetByID)
	village.PUT("", superAdmin, h.Village.Update)
	village.DELETE("", superAdmin, h.Village.Delete)
	village.GET("/users", superAdmin, h.User.ListByVillage)
	village.GET("/stats", anyRole, h.Stats.Village)

	// Properties
	village.GET("/properties", anyRole, h.Property.List)
	village.POST("/properties", admins, h.Property.Create)
	village.GET("/properties/:propertyId", anyRole, h.Property.GetByID)
	village.PUT("/properties/:propertyId", admins, h.Property.Update)
	village.DELETE("/properties/:propertyId", admins, h.Property.Delete)

	// Assessment
	village.GET("/properties/:propertyId/assessment", anyRole, h.Assessment.Property)
	village.GET("/assessment", anyRole, h.Assessment.Village)
	village.GET("/assessment-register", anyRole, h.Assessment.Register)
	village.POST("/assessment-register/archive", admins, h.Assessment.ArchiveRegister)

	// Global rate catalog
	rates := protected.Group("/global-rates", superAdmin)
	rates.GET("/construction-land", h.Rate.ListConstructionLand)
	rates.POST("/construction-land", h.Rate.CreateConstructionLand)
	rates.PUT("/construction-land/:id", h.Rate.UpdateConstructionLand)
	rates.DELETE("/construction-land/:id", h.Rate.DeleteConstructionLand)

	rates.GET("/depreciation", h.Rate.ListDepreciation)
	rates.POST("/depreciation", h.Rate.CreateDepreciation)
	rates.PUT("/depreciation/:id", h.Rate.UpdateDepreciation)
	rates.DELETE("/depreciation/:id", h.Rate.DeleteDepreciation)

	rates.GET("/usage-factor", h.Rate.ListUsageFactors)
	rates.POST("/usage-factor", h.Rate.CreateUsageFactor)
	rates.PUT("/usage-factor/:id", h.Rate.UpdateUsageFactor)
	rates.DELETE("/usage-factor/:id", h.Rate.DeleteUsageFactor)

	rates.GET("/water-supply", h.Rate.ListWaterSupply)
	rates.POST("/water-supply", h.Rate.CreateWaterSupply)
	rates.PUT("/water-supply/:id", h.Rate.UpdateWaterSupply)
	rates.DELETE("/water-supply/:id", h.Rate.DeleteWaterSupply)

	rates.GET("/slab-tax/:taxKey", h.Rate.ListSlabTax)
	rates.POST("/slab-tax/:taxKey", h.Rate.CreateSlabTax)
	rates.PUT("/slab-tax/:taxKey/:id", h.Rate.UpdateSlabTax)
	rates.DELETE("/slab-tax/:taxKey/:id", h.Rate.DeleteSlabTax)

	return r
}
