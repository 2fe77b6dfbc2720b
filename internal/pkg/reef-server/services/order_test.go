package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

func TestGetAllOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockDBClient, mockKCClient, tearDown := setUp(t)
	defer tearDown()

	testcases := []struct {
		name           string
		mockFunc       func()
		requestURL     string
		requestContext testContext
		httpStatus     int
	}{
		{
			name: "get own orders successfully",
			mockFunc: func() {
				mockKCClient.EXPECT().GetUserID().Return("12345").Times(1)
				mockDBClient.EXPECT().GetOrders("12345").Return(getResource("get-all-orders", nil).([]models.Order), nil).Times(1)
			},
			requestURL: "/orders",
			httpStatus: http.StatusOK,
		},
		{
			name: "manager lists every order",
			mockFunc: func() {
				mockKCClient.EXPECT().GetUserID().Return("12345").Times(1)
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(true).Times(1)
				mockDBClient.EXPECT().GetOrders("").Return(getResource("get-all-orders", nil).([]models.Order), nil).Times(1)
			},
			requestURL: "/orders?all=true",
			httpStatus: http.StatusOK,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockFunc()
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req, err := http.NewRequest(http.MethodGet, tc.requestURL, nil)
			if err != nil {
				t.Fatal(err)
			}
			ctx := getContext(tc.requestContext)
			c.Request = req.WithContext(ctx)
			dbCon = mockDBClient
			GetAllOrders(c)
			assert.Equal(t, tc.httpStatus, c.Writer.Status())
		})
	}
}

func TestGetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockDBClient, mockKCClient, tearDown := setUp(t)
	defer tearDown()

	testcases := []struct {
		name          string
		mockFunc      func()
		requestParams gin.Param
		httpStatus    int
	}{
		{
			name: "owner gets order successfully",
			mockFunc: func() {
				mockDBClient.EXPECT().GetOrderByID("ord-1").Return(getResource("get-order", nil).(*models.Order), nil).Times(1)
				mockKCClient.EXPECT().GetUserID().Return("12345").Times(1)
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(false).Times(1)
			},
			requestParams: gin.Param{Key: "id", Value: "ord-1"},
			httpStatus:    http.StatusOK,
		},
		{
			name:          "order id not set",
			mockFunc:      func() {},
			requestParams: gin.Param{Key: "id", Value: ""},
			httpStatus:    http.StatusBadRequest,
		},
		{
			name: "order not found",
			mockFunc: func() {
				mockDBClient.EXPECT().GetOrderByID("ord-404").Return(nil, utils.ErrResourceNotFound).Times(1)
			},
			requestParams: gin.Param{Key: "id", Value: "ord-404"},
			httpStatus:    http.StatusNotFound,
		},
		{
			name: "user is not the owner of the order",
			mockFunc: func() {
				mockDBClient.EXPECT().GetOrderByID("ord-1").Return(getResource("get-order", nil).(*models.Order), nil).Times(1)
				mockKCClient.EXPECT().GetUserID().Return("99999").Times(1)
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(false).Times(1)
			},
			requestParams: gin.Param{Key: "id", Value: "ord-1"},
			httpStatus:    http.StatusForbidden,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockFunc()
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req, err := http.NewRequest(http.MethodGet, "/orders", nil)
			if err != nil {
				t.Fatal(err)
			}
			ctx := getContext(formContext(nil))
			c.Request = req.WithContext(ctx)
			c.Params = gin.Params{tc.requestParams}
			dbCon = mockDBClient
			GetOrder(c)
			assert.Equal(t, tc.httpStatus, c.Writer.Status())
		})
	}
}
