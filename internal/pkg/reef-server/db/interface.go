package db

import (
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

//go:generate mockgen -destination=mock_db.go -package=db . DB

type DB interface {
	Connect() error
	Disconnect() error

	GetServices(userID string) ([]models.Service, error)
	GetServicesByStates(states ...models.ServiceState) ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	CreateService(service *models.Service) (string, error)
	UpdateServiceStatus(id string, state models.ServiceState, message string) error
	// ClaimServiceJob records the job handle for a service only if no job
	// has been recorded yet. It returns false when another invocation got
	// there first.
	ClaimServiceJob(id, jobID string) (bool, error)
	ClearServiceJob(id string) error

	GetOrders(userID string) ([]models.Order, error)
	GetOrderByID(id string) (*models.Order, error)
	GetOrderByServiceID(serviceID string) (*models.Order, error)
	UpdateOrderStatus(id string, status models.OrderStatus) error

	GetProductByID(id string) (*models.Product, error)
	GetProviderByID(id string) (*models.Provider, error)

	NewEvent(event *models.Event) error
	GetEventsByUserID(id string, startIndex, perPage int64) ([]models.Event, int64, error)
	WatchEvents(ch chan<- *models.Event) error
	MarkEventAsNotified(id string) error
}
