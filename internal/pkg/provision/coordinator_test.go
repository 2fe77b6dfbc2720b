package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ProjectReef/reef/internal/pkg/provision/refdata"
	"github.com/ProjectReef/reef/internal/pkg/provision/vro"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

const (
	testServiceID  = "svc-1"
	testOrderID    = "ord-1"
	testProductID  = "prd-1"
	testProviderID = "prv-1"
	testJobID      = "job-1"
)

func testService(jobID string) *models.Service {
	return &models.Service{
		ID:            testServiceID,
		Name:          "web-frontend",
		State:         models.ServiceStatePending,
		ExternalJobID: jobID,
		OrderID:       testOrderID,
		Answers: models.AnswerSet{
			{Name: "primary_role", Value: "app-server"},
			{Name: "vcpus", Value: "4"},
			{Name: "storage_performace_tier", Value: "2"},
		},
	}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:        testOrderID,
		UserID:    "user-1",
		ServiceID: testServiceID,
		ProductID: testProductID,
		Status:    models.OrderStatusApproved,
	}
}

func testProduct(dataCenter string) *models.Product {
	return &models.Product{
		ID:         testProductID,
		Name:       "linux-vm",
		ProviderID: testProviderID,
		Answers: models.AnswerSet{
			{Name: "data_center", Value: dataCenter},
		},
	}
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:   testProviderID,
		Name: "on-prem-vmware",
		Answers: models.AnswerSet{
			{Name: "access_id", Value: "wf-42"},
			{Name: "vrealize_host", Value: "https://vro.example.com"},
			{Name: "username", Value: "svc-reef"},
			{Name: "secret_key", Value: "hunter2"},
		},
	}
}

func testCoordinatorResolver() refdata.Resolver {
	return refdata.NewStatic(map[refdata.Category]map[string]string{
		refdata.CategoryDataCenter: {"7": "US-East-1"},
	})
}

// setUp wires a coordinator against mocked persistence and a mocked engine,
// returning a tearDown that restores the engine factory.
func setUp(t testing.TB) (*Coordinator, *db.MockDB, *vro.MockClient, func()) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockDB(ctrl)
	mockEngine := vro.NewMockClient(ctrl)

	origNewClient := vro.NewClient
	vro.NewClient = func(cfg vro.Config) vro.Client {
		return mockEngine
	}

	coordinator := NewCoordinator(CoordinatorConfig{
		DB:       mockDB,
		Resolver: testCoordinatorResolver(),
	})

	return coordinator, mockDB, mockEngine, func() {
		vro.NewClient = origNewClient
		ctrl.Finish()
	}
}

func expectEntities(mockDB *db.MockDB, service *models.Service, dataCenter string) {
	mockDB.EXPECT().GetServiceByID(testServiceID).Return(service, nil).Times(1)
	mockDB.EXPECT().GetOrderByServiceID(testServiceID).Return(testOrder(), nil).Times(1)
	mockDB.EXPECT().GetProductByID(testProductID).Return(testProduct(dataCenter), nil).Times(1)
	mockDB.EXPECT().GetProviderByID(testProviderID).Return(testProvider(), nil).Times(1)
}

func TestAdvanceSubmitsExactlyOnce(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	expectEntities(mockDB, testService(""), "7")
	mockEngine.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, set vro.Parameters) (string, error) {
			assert.Equal(t, "US-East-1", set["dataCenter"])
			assert.Equal(t, "app-server", set["serverRole"])
			assert.Equal(t, "Tier2", set["storageTier"])
			assert.Equal(t, 0, set["secondDiskSize"])
			return testJobID, nil
		}).Times(1)
	mockDB.EXPECT().ClaimServiceJob(testServiceID, testJobID).Return(true, nil).Times(1)
	mockDB.EXPECT().NewEvent(gomock.Any()).Return(nil).Times(1)
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{Handle: testJobID, State: vro.StatePending}, nil).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(testServiceID, models.ServiceState("pending"), gomock.Any()).Return(nil).Times(1)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.NoError(t, err)
}

func TestAdvanceExistingJobPollsOnly(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	// job already recorded: submit must never be called
	expectEntities(mockDB, testService(testJobID), "7")
	mockEngine.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{Handle: testJobID, State: vro.StateRunning}, nil).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(testServiceID, models.ServiceState("running"), gomock.Any()).Return(nil).Times(1)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.NoError(t, err)
}

func TestAdvanceCompletedJob(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	expectEntities(mockDB, testService(testJobID), "7")
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{Handle: testJobID, State: vro.StateCompleted}, nil).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(testServiceID, models.ServiceStateRunning, gomock.Any()).Return(nil).Times(1)
	mockDB.EXPECT().UpdateOrderStatus(testOrderID, models.OrderStatusCompleted).Return(nil).Times(1)
	mockDB.EXPECT().NewEvent(gomock.Any()).Return(nil).Times(1)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.NoError(t, err)
}

func TestAdvanceFailedJobLeavesOrderUntouched(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	expectEntities(mockDB, testService(testJobID), "7")
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{Handle: testJobID, State: vro.StateFailed}, nil).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(testServiceID, models.ServiceState("failed"), gomock.Any()).Return(nil).Times(1)
	mockDB.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Times(0)
	mockDB.EXPECT().NewEvent(gomock.Any()).Return(nil).Times(1)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.NoError(t, err)
}

func TestAdvanceLookupFailureAbortsBeforeSubmission(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	// unknown data center key: mapping fails, nothing may reach the engine
	expectEntities(mockDB, testService(""), "999")
	mockEngine.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
	mockEngine.EXPECT().Poll(gomock.Any(), gomock.Any()).Times(0)
	mockDB.EXPECT().UpdateServiceStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, refdata.ErrNotFound))
}

func TestAdvancePollFailureLeavesServiceUnchanged(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	expectEntities(mockDB, testService(testJobID), "7")
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{}, vro.ErrJobUnreachable).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockDB.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Times(0)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, vro.ErrJobUnreachable))
}

func TestAdvanceClaimConflictUsesRecordedJob(t *testing.T) {
	coordinator, mockDB, mockEngine, tearDown := setUp(t)
	defer tearDown()

	expectEntities(mockDB, testService(""), "7")
	mockEngine.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("job-dup", nil).Times(1)
	mockDB.EXPECT().ClaimServiceJob(testServiceID, "job-dup").Return(false, nil).Times(1)
	// another invocation won the claim, its handle is the one polled
	mockDB.EXPECT().GetServiceByID(testServiceID).Return(testService(testJobID), nil).Times(1)
	mockEngine.EXPECT().Poll(gomock.Any(), testJobID).Return(vro.Execution{Handle: testJobID, State: vro.StateRunning}, nil).Times(1)
	mockDB.EXPECT().UpdateServiceStatus(testServiceID, models.ServiceState("running"), gomock.Any()).Return(nil).Times(1)

	err := coordinator.Advance(context.Background(), testServiceID)
	assert.NoError(t, err)
}
