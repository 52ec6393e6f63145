package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pirouette/handlers"
	"pirouette/middleware"
)

// RegisterClassRoutes sets up the scheduling engine and class CRUD endpoints.
func RegisterClassRoutes(r *gin.Engine, ch *handlers.ClassHandler) {
	api := r.Group("/api/classes")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/schedule", ch.ScheduleClassHandler)
		api.POST("/schedule/confirm", ch.ConfirmScheduleHandler)
		api.DELETE("/schedule/:sessionID", ch.CancelScheduleHandler)
		api.POST("/:id/copies", ch.CopyClassHandler)
		api.GET("/:id", ch.GetClassHandler)
		api.PATCH("/:id", ch.UpdateClassHandler)
		api.DELETE("/:id", ch.DeleteClassHandler)
	}
}

// RegisterStudioRoutes sets up studio management endpoints.
func RegisterStudioRoutes(r *gin.Engine, sh *handlers.StudioHandler, ch *handlers.ClassHandler) {
	api := r.Group("/api/studios")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", sh.CreateStudioHandler)
		api.GET("", sh.ListOwnerStudiosHandler)
		api.GET("/:id", sh.GetStudioHandler)
		api.GET("/:id/classes", ch.ListStudioClassesHandler)
		api.PATCH("/:id", sh.UpdateStudioHandler)
		api.DELETE("/:id", sh.DeleteStudioHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pirouette"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ch *handlers.ClassHandler, sh *handlers.StudioHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterClassRoutes(r, ch)
	RegisterStudioRoutes(r, sh, ch)
}
