package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/usersvc/internal/server/http/dto"
	"github.com/polkiloo/usersvc/internal/server/http/handlers"
	"github.com/polkiloo/usersvc/internal/server/http/middleware"
)

const homeMessage = "User Management System is running"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ServiceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: homeMessage})
	})
	engine.GET("/users", userHandler.List)
	engine.POST("/users", userHandler.Create)
	engine.GET("/user/:id", userHandler.Get)
	engine.PUT("/user/:id", userHandler.Update)
	engine.DELETE("/user/:id", userHandler.Delete)
	engine.GET("/search", userHandler.Search)
	engine.POST("/login", authHandler.Login)

	return engine
}
