package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usermodel "perkpal-backend/internal/domains/user/model"
	"perkpal-backend/internal/shared/middleware"
	"perkpal-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIPMiddleware(),
	)

	// Root-level SEO endpoints; crawlers do not know about /api/v1.
	router.GET("/sitemap.xml", c.SEOHandler.Sitemap)
	router.GET("/robots.txt", c.SEOHandler.Robots)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// Everything the marketing site consumes without a session.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/perks", c.PerkHandler.ListPublicPerks)
	v1.GET("/perks/:slug", c.PerkHandler.GetPublicPerk)
	v1.POST("/perks/:slug/leads", c.LeadHandler.CaptureLead)

	v1.GET("/categories", c.CategoryHandler.ListCategories)
	v1.GET("/categories/:slug", c.CategoryHandler.GetCategoryBySlug)

	v1.GET("/posts", c.PostHandler.ListPublicPosts)
	v1.GET("/posts/:slug", c.PostHandler.GetPublicPost)

	v1.GET("/pages/:slug", c.PageHandler.GetPublicPage)
	v1.GET("/sections", c.PageHandler.ListPublicSections)
	v1.GET("/settings", c.SettingsHandler.GetPublic)
}

// ========================================
// ADMIN ROUTES
// ========================================
// Content editors manage the catalog and content; destructive operations and
// site-wide settings stay admin-only.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(usermodel.RoleAdmin, usermodel.RoleContentEditor),
	)
	adminOnly := middleware.RequireRole(usermodel.RoleAdmin)

	categories := admin.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.POST("", c.CategoryHandler.CreateCategory)
		categories.POST("/reorder", c.CategoryHandler.ReorderCategories)
		categories.GET("/:id", c.CategoryHandler.GetCategory)
		categories.PUT("/:id", c.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", adminOnly, c.CategoryHandler.DeleteCategory)
		categories.POST("/:id/subcategories", c.CategoryHandler.CreateSubcategory)
	}

	subcategories := admin.Group("/subcategories")
	{
		subcategories.GET("", c.CategoryHandler.ListSubcategories)
		subcategories.POST("/reorder", c.CategoryHandler.ReorderSubcategories)
		subcategories.PUT("/:id", c.CategoryHandler.UpdateSubcategory)
		subcategories.DELETE("/:id", adminOnly, c.CategoryHandler.DeleteSubcategory)
	}

	perks := admin.Group("/perks")
	{
		perks.GET("", c.PerkHandler.ListPerks)
		perks.POST("", c.PerkHandler.CreatePerk)
		perks.POST("/reorder", c.PerkHandler.ReorderPerks)
		perks.GET("/:id", c.PerkHandler.GetPerk)
		perks.PUT("/:id", c.PerkHandler.UpdatePerk)
		perks.DELETE("/:id", adminOnly, c.PerkHandler.DeletePerk)
	}

	leads := admin.Group("/leads")
	{
		leads.GET("", c.LeadHandler.ListLeads)
		leads.GET("/export", c.LeadHandler.ExportCSV)
		leads.GET("/export/excel", c.LeadHandler.ExportExcel)
		leads.GET("/:id", c.LeadHandler.GetLead)
		leads.DELETE("/:id", adminOnly, c.LeadHandler.DeleteLead)
	}

	posts := admin.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.POST("", c.PostHandler.CreatePost)
		posts.GET("/:id", c.PostHandler.GetPost)
		posts.PUT("/:id", c.PostHandler.UpdatePost)
		posts.DELETE("/:id", adminOnly, c.PostHandler.DeletePost)
		posts.POST("/:id/publish", c.PostHandler.PublishPost)
		posts.POST("/:id/unpublish", c.PostHandler.UnpublishPost)
	}

	media := admin.Group("/media")
	{
		media.GET("", c.MediaHandler.List)
		media.POST("", c.MediaHandler.Upload)
		media.DELETE("/:id", adminOnly, c.MediaHandler.Delete)
	}

	pages := admin.Group("/pages")
	{
		pages.GET("", c.PageHandler.ListPages)
		pages.POST("", c.PageHandler.CreatePage)
		pages.GET("/:id", c.PageHandler.GetPage)
		pages.PUT("/:id", c.PageHandler.UpdatePage)
		pages.DELETE("/:id", adminOnly, c.PageHandler.DeletePage)
	}

	sections := admin.Group("/sections")
	{
		sections.GET("", c.PageHandler.ListSections)
		sections.POST("", c.PageHandler.CreateSection)
		sections.POST("/reorder", c.PageHandler.ReorderSections)
		sections.PUT("/:id", c.PageHandler.UpdateSection)
		sections.DELETE("/:id", adminOnly, c.PageHandler.DeleteSection)
	}

	settings := admin.Group("/settings")
	{
		settings.GET("", c.SettingsHandler.Get)
		settings.PUT("", adminOnly, c.SettingsHandler.Update)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		overall := "ok"
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			dbStatus = "unreachable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unreachable"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
