package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reefClient "github.com/ProjectReef/reef/internal/pkg/reef-server/client"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

func AllowAdminOnly(c *gin.Context) {
	config := reefClient.GetConfigFromContext(c.Request.Context())
	kc := reefClient.NewKeyCloakClient(config, c.Request.Context())
	if !kc.IsRole(utils.ManagerRole) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform this action"})
		return
	}
	c.Next()
}
