package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hn-radar/cmd/api/handlers"
	"hn-radar/cmd/api/middleware"
	"hn-radar/db"
	_ "hn-radar/docs"
)

// New builds the gin engine. Services are constructed by the caller and
// passed in so the router holds no ambient state.
func New(live handlers.LiveStoryService, archive handlers.ArchiveReader) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/stories/top", handlers.TopStoriesHandler(live))
		api.GET("/stories/:id", handlers.GetStoryHandler(live))
		api.GET("/archive", handlers.ListArchiveHandler(archive))
		api.GET("/archive/:id", handlers.GetArchivedStoryHandler(archive))
	}

	return r
}
