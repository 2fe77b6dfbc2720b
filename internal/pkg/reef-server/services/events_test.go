package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

func TestGetEvents(t *testing.T) {
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
			name: "get events successfully",
			mockFunc: func() {
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(true).Times(1)
				mockDBClient.EXPECT().GetEventsByUserID("", int64(0), int64(20)).Return(getResource("get-events-by-userid", nil).([]models.Event), int64(1), nil).Times(1)
			},
			requestURL: "/events",
			requestContext: formContext(customValues{
				"userid":                "12345",
				"keycloak_hostname":     "127.0.0.1",
				"keycloak_access_token": "Bearer test-token",
				"keycloak_realm":        "test-reef",
			}),
			httpStatus: http.StatusOK,
		},
		{
			name: "non-manager only sees own events",
			mockFunc: func() {
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(false).Times(1)
				mockKCClient.EXPECT().GetUserID().Return("12345").Times(1)
				mockDBClient.EXPECT().GetEventsByUserID("12345", int64(0), int64(20)).Return(getResource("get-events-by-userid", nil).([]models.Event), int64(1), nil).Times(1)
			},
			requestURL: "/events",
			httpStatus: http.StatusOK,
		},
		{
			name: "paging parameters are forwarded",
			mockFunc: func() {
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(true).Times(1)
				mockDBClient.EXPECT().GetEventsByUserID("", int64(10), int64(5)).Return(getResource("get-events-by-userid", nil).([]models.Event), int64(11), nil).Times(1)
			},
			requestURL: "/events?page=3&per_page=5",
			httpStatus: http.StatusOK,
		},
		{
			name: "bogus paging parameters fall back to defaults",
			mockFunc: func() {
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(true).Times(1)
				mockDBClient.EXPECT().GetEventsByUserID("", int64(0), int64(20)).Return(getResource("get-events-by-userid", nil).([]models.Event), int64(1), nil).Times(1)
			},
			requestURL: "/events?page=bogus&per_page=-1",
			httpStatus: http.StatusOK,
		},
		{
			name: "db failure",
			mockFunc: func() {
				mockKCClient.EXPECT().IsRole(utils.ManagerRole).Return(true).Times(1)
				mockDBClient.EXPECT().GetEventsByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), assert.AnError).Times(1)
			},
			requestURL: "/events",
			httpStatus: http.StatusBadRequest,
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
			GetEvents(c)
			assert.Equal(t, tc.httpStatus, c.Writer.Status())
		})
	}
}
