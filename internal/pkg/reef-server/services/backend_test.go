package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/client"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

type testContext struct {
	userID              string
	keyCloakHostname    string
	keyCloakAccessToken string
	keyCloakRealm       string
	roles               []string
	groups              []models.Group
	username            string
}

type customValues = map[string]interface{}

// fakeAdvancer stands in for the provisioning coordinator; it records the
// service ids it was asked to advance.
type fakeAdvancer struct {
	err   error
	calls []string
}

func (f *fakeAdvancer) Advance(_ context.Context, serviceID string) error {
	f.calls = append(f.calls, serviceID)
	return f.err
}

// return new mock clients and tearDown to release resource
func setUp(t testing.TB) (mockedDBClient *db.MockDB, mockedKeyCloakClient *client.MockKeycloak, tearDown func()) {
	ctrlDB := gomock.NewController(t)
	mockDBClient := db.NewMockDB(ctrlDB)

	ctrlKeyCloak := gomock.NewController(t)
	mockKeyCloakClient := client.NewMockKeycloak(ctrlKeyCloak)

	client.NewKeyCloakClient = func(config client.KeyCloakConfig, ctx context.Context) client.Keycloak {
		return mockKeyCloakClient
	}

	return mockDBClient, mockKeyCloakClient, func() {
		ctrlDB.Finish()
		ctrlKeyCloak.Finish()
	}
}

func getResource(apiType string, customValues map[string]interface{}) interface{} {
	switch apiType {

	case "get-service":
		service := models.Service{
			ID:      "svc-1",
			Name:    "test-service",
			Type:    "vm",
			Health:  models.ServiceHealthOK,
			State:   models.ServiceStatePending,
			OrderID: "ord-1",
			Answers: models.AnswerSet{
				{Name: "vcpus", Value: "4"},
			},
		}
		// Update service with custom values if provided
		for key, value := range customValues {
			if fieldValue := reflect.ValueOf(&service).Elem().FieldByName(key); fieldValue.IsValid() {
				if value != nil {
					fieldValue.Set(reflect.ValueOf(value))
				}
			}
		}
		return &service
	case "get-all-services":
		service := getResource("get-service", customValues).(*models.Service)
		return []models.Service{*service}
	case "get-order":
		order := models.Order{
			ID:        "ord-1",
			UserID:    "12345",
			ServiceID: "svc-1",
			ProductID: "prd-1",
			Status:    models.OrderStatusApproved,
		}
		// Update order with custom values if provided
		for key, value := range customValues {
			if fieldValue := reflect.ValueOf(&order).Elem().FieldByName(key); fieldValue.IsValid() {
				if value != nil {
					fieldValue.Set(reflect.ValueOf(value))
				}
			}
		}
		return &order
	case "get-all-orders":
		order := getResource("get-order", customValues).(*models.Order)
		return []models.Order{*order}
	case "get-events-by-userid":
		event := models.Event{
			Type:        models.EventServiceProvisioned,
			CreatedAt:   time.Now(),
			Originator:  "12345",
			UserID:      "12345",
			UserEmail:   "test@reef.com",
			ServiceID:   "svc-1",
			Notify:      false,
			NotifyAdmin: false,
			Notified:    false,
		}
		return []models.Event{event}
	default:
		return nil
	}
}

func getContext(requestCtx testContext) context.Context {
	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), "userid", requestCtx.userID)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "keycloak_hostname", requestCtx.keyCloakHostname)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "keycloak_access_token", requestCtx.keyCloakAccessToken)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "keycloak_realm", requestCtx.keyCloakRealm)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "groups", requestCtx.groups)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "username", requestCtx.username)
	//nolint:staticcheck
	ctx = context.WithValue(ctx, "roles", requestCtx.roles)
	return ctx
}

func formContext(params customValues) testContext {
	ctx := testContext{}
	for key, val := range params {
		switch key {
		case "userid":
			if v, ok := val.(string); ok {
				ctx.userID = v
			} else {
				panic("userid must be string")
			}
		case "keycloak_access_token":
			if v, ok := val.(string); ok {
				ctx.keyCloakAccessToken = v
			} else {
				panic("keycloak_access_token must be string")
			}
		case "keycloak_realm":
			if v, ok := val.(string); ok {
				ctx.keyCloakRealm = v
			} else {
				panic("keycloak_realm must be string")
			}
		case "keycloak_hostname":
			if v, ok := val.(string); ok {
				ctx.keyCloakHostname = v
			} else {
				panic("keycloak_hostname must be string")
			}
		case "roles":
			if v, ok := val.([]string); ok {
				ctx.roles = v
			} else {
				panic("invalid roles information")
			}
		case "groups":
			if v, ok := val.([]models.Group); ok {
				ctx.groups = v
			} else {
				panic("invalid groups information")
			}
		case "username":
			if v, ok := val.(string); ok {
				ctx.username = v
			} else {
				panic("invalid username information")
			}
		}
	}
	return ctx
}
