package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tbaehler/gin-keycloak/pkg/ginkeycloak"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/router/middleware"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/services"

	_ "github.com/joho/godotenv/autoload"
)

var (
	realm    = os.Getenv("KEYCLOAK_REALM")
	hostname = os.Getenv("KEYCLOAK_HOSTNAME")
)

func CreateRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authorized := router.Group("/api/v1")
	authorized.Use(ginkeycloak.Auth(ginkeycloak.AuthCheck(), ginkeycloak.KeycloakConfig{
		Url:   hostname,
		Realm: realm,
	}))
	authorized.Use(middleware.ValidateToken)
	authorized.Use(middleware.SetUserContexts)

	authorizedAdmin := authorized.Group("")
	authorizedAdmin.Use(middleware.AllowAdminOnly)

	// service related endpoints

	// List all user provisioned services
	// services?all=true for admin to list all provisioned services
	authorized.GET("/services", services.GetAllServicesHandler)
	authorized.GET("/services/:id", services.GetService)
	// Drive the provisioning workflow of a service one step
	authorized.POST("/services/:id/advance", services.AdvanceService)
	// Clear a stuck orchestration job so the next advance resubmits
	authorizedAdmin.POST("/services/:id/reset", services.ResetService)

	// order related endpoints
	authorized.GET("/orders", services.GetAllOrders)
	authorized.GET("/orders/:id", services.GetOrder)

	authorized.GET("/events", services.GetEvents)

	return router
}
