package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/provision/params"
	"github.com/ProjectReef/reef/internal/pkg/provision/refdata"
	"github.com/ProjectReef/reef/internal/pkg/provision/vro"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/client"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

var dbCon db.DB

// Advancer drives the provisioning workflow of one service.
type Advancer interface {
	Advance(ctx context.Context, serviceID string) error
}

var coordinator Advancer

func SetDB(db db.DB) {
	dbCon = db
}

func SetCoordinator(a Advancer) {
	coordinator = a
}

func GetAllServicesHandler(c *gin.Context) {
	serviceItems, err := getAllServices(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}
	c.JSON(http.StatusOK, serviceItems)
}

func getAllServices(c *gin.Context) ([]models.Service, error) {
	logger := log.GetLogger()

	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())
	userId := kc.GetUserID()

	listAllServices := c.DefaultQuery("all", "false")

	// list all the services for admin
	if listAllServices == "true" && kc.IsRole(utils.ManagerRole) {
		logger.Debug("listing all the services")
		userId = ""
	} else {
		logger.Debug("listing all the services of user", zap.String("user id", userId))
	}
	services, err := dbCon.GetServices(userId)
	if err != nil {
		logger.Error("failed to get services", zap.Error(err))
		return nil, err
	}
	logger.Debug("fetched services", zap.Any("services", services))
	return services, nil
}

func GetService(c *gin.Context) {
	logger := log.GetLogger()
	service, status, err := getOwnedService(c)
	if err != nil {
		c.JSON(status, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}
	logger.Debug("fetched service", zap.Any("service", service))
	c.JSON(http.StatusOK, service)
}

// AdvanceService runs one step of the provisioning workflow for the service
// and returns the reloaded record.
func AdvanceService(c *gin.Context) {
	logger := log.GetLogger()
	service, status, err := getOwnedService(c)
	if err != nil {
		c.JSON(status, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}

	if err := coordinator.Advance(c.Request.Context(), service.ID); err != nil {
		logger.Error("failed to advance service", zap.String("service id", service.ID), zap.Error(err))
		c.JSON(provisionHTTPStatus(err), gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}

	updated, err := dbCon.GetServiceByID(service.ID)
	if err != nil {
		logger.Error("failed to reload service", zap.String("service id", service.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ResetService clears the recorded orchestration job of the service so the
// next advance submits a fresh one. Admin only, routed accordingly.
func ResetService(c *gin.Context) {
	logger := log.GetLogger()
	serviceID := c.Param("id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service id is not set"})
		return
	}

	if err := dbCon.ClearServiceJob(serviceID); err != nil {
		logger.Error("failed to reset service", zap.String("service id", serviceID), zap.Error(err))
		if errors.Is(err, utils.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v", err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}

	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())
	event := models.NewEvent(kc.GetUserID(), kc.GetUserID(), models.EventServiceReset)
	event.SetService(serviceID)
	event.SetLog(models.EventLogLevelINFO, fmt.Sprintf("Orchestration job of service %s has been cleared.", serviceID))
	if err := dbCon.NewEvent(event); err != nil {
		logger.Error("failed to create event in db", zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

// getOwnedService loads the service from the path parameter and enforces
// that the caller owns it or is a manager.
func getOwnedService(c *gin.Context) (*models.Service, int, error) {
	logger := log.GetLogger()
	serviceID := c.Param("id")
	if serviceID == "" {
		logger.Error("service id is not set")
		return nil, http.StatusBadRequest, errors.New("service id is not set")
	}

	service, err := dbCon.GetServiceByID(serviceID)
	if err != nil {
		logger.Error("failed to get service", zap.String("service id", serviceID), zap.Error(err))
		if errors.Is(err, utils.ErrResourceNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusBadRequest, err
	}

	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())
	userId := kc.GetUserID()

	// should not return service if the user is not admin or not owner of service
	if !kc.IsRole(utils.ManagerRole) {
		order, err := dbCon.GetOrderByServiceID(service.ID)
		if err != nil {
			logger.Error("failed to get order for service", zap.String("service id", service.ID), zap.Error(err))
			return nil, http.StatusBadRequest, err
		}
		if order.UserID != userId {
			logger.Error("user is not the owner of service", zap.String("user id", userId), zap.String("service id", serviceID))
			return nil, http.StatusForbidden, fmt.Errorf("user id: %s is not owner of service %s", userId, service.ID)
		}
	}

	return service, http.StatusOK, nil
}

// provisionHTTPStatus maps workflow errors onto HTTP statuses: bad input
// stays 4xx, engine trouble surfaces as a gateway problem.
func provisionHTTPStatus(err error) int {
	var invalid *params.InvalidAnswerValueError
	switch {
	case errors.As(err, &invalid), errors.Is(err, refdata.ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, vro.ErrSubmissionRejected):
		return http.StatusBadGateway
	case errors.Is(err, vro.ErrJobUnreachable), errors.Is(err, refdata.ErrUnavailable):
		return http.StatusGatewayTimeout
	case errors.Is(err, utils.ErrResourceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
