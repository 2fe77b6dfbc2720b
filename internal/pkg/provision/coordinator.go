package provision

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/provision/params"
	"github.com/ProjectReef/reef/internal/pkg/provision/refdata"
	"github.com/ProjectReef/reef/internal/pkg/provision/vro"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

// Coordinator drives the provisioning workflow of a service: it maps the
// collected answers into an orchestration job, submits the job at most once
// per service, polls it and writes the observed state back to the service
// and its order.
type Coordinator struct {
	db       db.DB
	mapper   *params.Mapper
	workflow string
	// InsecureSkipVerify is forwarded to the engine client. Off by default.
	insecureTLS bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

type CoordinatorConfig struct {
	DB       db.DB
	Resolver refdata.Resolver
	// Workflow overrides the job template name, defaults to
	// vro.DefaultWorkflow.
	Workflow string
	// InsecureSkipVerify disables TLS verification towards the engine,
	// an explicit opt-in.
	InsecureSkipVerify bool
}

func NewCoordinator(cfg CoordinatorConfig) *Coordinator {
	return &Coordinator{
		db:          cfg.DB,
		mapper:      params.New(cfg.Resolver),
		workflow:    cfg.Workflow,
		insecureTLS: cfg.InsecureSkipVerify,
		locks:       map[string]*sync.Mutex{},
	}
}

// lockFor serializes advances per service id. The submit/persist pair is not
// atomic across the external call, concurrent advances on one service could
// both observe an unset job id and submit twice.
func (c *Coordinator) lockFor(serviceID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[serviceID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[serviceID] = l
	}
	return l
}

// Advance runs one step of the provisioning workflow for the service. If no
// job has been submitted yet it maps the answers and submits one, persisting
// the returned handle before anything else. It then polls the job and writes
// the observed state to the service, completing the order once the job
// succeeds. Advancing different services concurrently is safe; advances on
// one service are serialized.
func (c *Coordinator) Advance(ctx context.Context, serviceID string) error {
	l := c.lockFor(serviceID)
	l.Lock()
	defer l.Unlock()

	logger := log.GetLogger()

	service, err := c.db.GetServiceByID(serviceID)
	if err != nil {
		return errors.Wrapf(err, "service %s: failed to load service", serviceID)
	}
	order, err := c.db.GetOrderByServiceID(service.ID)
	if err != nil {
		return errors.Wrapf(err, "service %s: failed to load order", service.ID)
	}
	product, err := c.db.GetProductByID(order.ProductID)
	if err != nil {
		return errors.Wrapf(err, "service %s: failed to load product %s", service.ID, order.ProductID)
	}
	provider, err := c.db.GetProviderByID(product.ProviderID)
	if err != nil {
		return errors.Wrapf(err, "service %s: failed to load provider %s", service.ID, product.ProviderID)
	}

	engine := vro.NewClient(vro.Config{
		Credentials:        params.Credentials(provider.Answers),
		Workflow:           c.workflow,
		InsecureSkipVerify: c.insecureTLS,
	})

	jobID := service.ExternalJobID
	if jobID == "" {
		jobID, err = c.submit(ctx, engine, service, order, product)
		if err != nil {
			return err
		}
	}

	execution, err := engine.Poll(ctx, jobID)
	if err != nil {
		// service and order are deliberately left untouched; the job
		// handle already persisted lets a later advance resume at the
		// poll step
		return errors.Wrapf(err, "service %s: failed to poll job %s", service.ID, jobID)
	}
	logger.Debug("polled orchestration job",
		zap.String("service", service.ID), zap.String("job", jobID), zap.String("state", string(execution.State)))

	state := models.ServiceState(execution.State)
	if execution.State == vro.StateCompleted {
		state = models.ServiceStateRunning
	}
	message := fmt.Sprintf("orchestration job %s reported state %s", jobID, execution.State)

	if err := c.db.UpdateServiceStatus(service.ID, state, message); err != nil {
		return errors.Wrapf(err, "service %s: failed to persist status", service.ID)
	}

	switch execution.State {
	case vro.StateCompleted:
		if err := c.db.UpdateOrderStatus(order.ID, models.OrderStatusCompleted); err != nil {
			return errors.Wrapf(err, "service %s: failed to complete order %s", service.ID, order.ID)
		}
		c.emit(order, models.EventServiceProvisioned, models.EventLogLevelINFO,
			fmt.Sprintf("Service %s has been provisioned, order %s is complete.", service.Name, order.ID))
	case vro.StateFailed:
		c.emit(order, models.EventServiceProvisionFailed, models.EventLogLevelERROR,
			fmt.Sprintf("Provisioning of service %s failed, job %s.", service.Name, jobID))
	}

	return nil
}

// submit maps the answers into a parameter set and submits the job,
// recording the handle before returning. A crash between submission and the
// claim below is the only window in which a duplicate job can occur.
func (c *Coordinator) submit(ctx context.Context, engine vro.Client, service *models.Service, order *models.Order, product *models.Product) (string, error) {
	logger := log.GetLogger()

	set, err := c.mapper.Map(ctx, product.Answers, service.Answers)
	if err != nil {
		// abort before any submission, bad input must not leak jobs
		// into the engine
		return "", errors.Wrapf(err, "service %s: failed to map answers", service.ID)
	}

	jobID, err := engine.Submit(ctx, set)
	if err != nil {
		return "", errors.Wrapf(err, "service %s: failed to submit job", service.ID)
	}
	logger.Info("submitted orchestration job", zap.String("service", service.ID), zap.String("job", jobID))

	claimed, err := c.db.ClaimServiceJob(service.ID, jobID)
	if err != nil {
		return "", errors.Wrapf(err, "service %s: failed to persist job handle %s", service.ID, jobID)
	}
	if !claimed {
		// another invocation raced us past the guard; keep polling the
		// handle that won the claim and flag the duplicate
		logger.Warn("duplicate orchestration job submitted",
			zap.String("service", service.ID), zap.String("job", jobID))
		current, err := c.db.GetServiceByID(service.ID)
		if err != nil {
			return "", errors.Wrapf(err, "service %s: failed to reload service after claim conflict", service.ID)
		}
		return current.ExternalJobID, nil
	}

	c.emit(order, models.EventServiceProvisionRequested, models.EventLogLevelINFO,
		fmt.Sprintf("Provisioning of service %s has been requested, job %s.", service.Name, jobID))

	return jobID, nil
}

// emit records an event for the notifier; event persistence failures are
// logged, they never fail the workflow.
func (c *Coordinator) emit(order *models.Order, typ models.EventType, level models.EventLogLevel, message string) {
	event := models.NewEvent(order.UserID, order.UserID, typ)
	event.SetService(order.ServiceID)
	event.SetNotify()
	if level == models.EventLogLevelERROR {
		event.SetNotifyAdmin()
	}
	event.SetLog(level, message)
	if err := c.db.NewEvent(event); err != nil {
		log.GetLogger().Error("failed to create event in db", zap.Error(err))
	}
}
