package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/client"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

func GetAllOrders(c *gin.Context) {
	logger := log.GetLogger()

	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())
	userId := kc.GetUserID()

	// list every order for admin
	if c.DefaultQuery("all", "false") == "true" && kc.IsRole(utils.ManagerRole) {
		userId = ""
	}

	orders, err := dbCon.GetOrders(userId)
	if err != nil {
		logger.Error("failed to get orders", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}
	logger.Debug("fetched orders", zap.Any("orders", orders))
	c.JSON(http.StatusOK, orders)
}

func GetOrder(c *gin.Context) {
	logger := log.GetLogger()
	orderID := c.Param("id")
	if orderID == "" {
		logger.Error("order id is not set")
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id is not set"})
		return
	}

	order, err := dbCon.GetOrderByID(orderID)
	if err != nil {
		logger.Error("failed to get order", zap.String("order id", orderID), zap.Error(err))
		if errors.Is(err, utils.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v", err)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v", err)})
		return
	}

	config := client.GetConfigFromContext(c.Request.Context())
	kc := client.NewKeyCloakClient(config, c.Request.Context())
	userId := kc.GetUserID()

	if !kc.IsRole(utils.ManagerRole) && order.UserID != userId {
		logger.Error("user is not the owner of order", zap.String("user id", userId), zap.String("order id", orderID))
		c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("user id: %s is not owner of order %s", userId, orderID)})
		return
	}

	c.JSON(http.StatusOK, order)
}
