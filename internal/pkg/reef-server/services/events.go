package services

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/client"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

const defaultPerPage = 20

// GetEvents returns events, paged. Managers see everything, users only the
// events about them.
func GetEvents(c *gin.Context) {
	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())

	var userID string
	if !kc.IsRole(utils.ManagerRole) {
		// Get authenticated user's ID
		userID = kc.GetUserID()
	}

	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.ParseInt(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)), 10, 64)
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}

	events, total, err := dbCon.GetEventsByUserID(userID, (page-1)*perPage, perPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalPages := int64(math.Ceil(float64(total) / float64(perPage)))
	response := models.EventResponse{
		TotalPages: totalPages,
		TotalItems: total,
		Events:     events,
		Links: models.Links{
			Self: fmt.Sprintf("/api/v1/events?page=%d&per_page=%d", page, perPage),
		},
	}
	if page < totalPages {
		response.Links.Next = fmt.Sprintf("/api/v1/events?page=%d&per_page=%d", page+1, perPage)
	}
	if totalPages > 0 {
		response.Links.Last = fmt.Sprintf("/api/v1/events?page=%d&per_page=%d", totalPages, perPage)
	}

	c.JSON(http.StatusOK, response)
}
