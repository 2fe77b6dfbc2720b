package models

import "time"

type ServiceHealth string
type ServiceState string

const (
	ServiceHealthOK       ServiceHealth = "ok"
	ServiceHealthWarning  ServiceHealth = "warning"
	ServiceHealthCritical ServiceHealth = "critical"
)

// ServiceState values cover the local provisioning lifecycle. The state is
// stored as a string because the coordinator copies unrecognized external
// job states through verbatim (e.g. "failed", "canceled").
const (
	ServiceStateUnknown      ServiceState = "unknown"
	ServiceStatePending      ServiceState = "pending"
	ServiceStateProvisioning ServiceState = "provisioning"
	ServiceStateStarting     ServiceState = "starting"
	ServiceStateRunning      ServiceState = "running"
	ServiceStateAvailable    ServiceState = "available"
	ServiceStateStopping     ServiceState = "stopping"
	ServiceStateStopped      ServiceState = "stopped"
	ServiceStateUnavailable  ServiceState = "unavailable"
	ServiceStateRetired      ServiceState = "retired"
	ServiceStateTerminated   ServiceState = "terminated"
)

// Service is a user provisioned resource instance ordered from the catalog.
type Service struct {
	ID     string        `json:"id" bson:"_id,omitempty"`
	Name   string        `json:"name" bson:"name"`
	Type   string        `json:"type" bson:"type,omitempty"`
	Health ServiceHealth `json:"health" bson:"health"`
	State  ServiceState  `json:"state" bson:"state"`
	// StatusMessage carries free-form detail about the current state.
	StatusMessage string `json:"status_msg" bson:"status_msg,omitempty"`
	// ExternalJobID is the handle of the orchestration job submitted for
	// this service. Presence is the idempotency guard: once set, the
	// coordinator only ever polls, it never submits again.
	ExternalJobID string    `json:"external_job_id,omitempty" bson:"external_job_id,omitempty"`
	OrderID       string    `json:"order_id" bson:"order_id"`
	Answers       AnswerSet `json:"answers" bson:"answers,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

// Terminal reports whether the provisioning workflow is done with this
// service, successfully or not. The caller is expected to stop invoking
// advance once a service is terminal.
func (s *Service) Terminal() bool {
	switch s.State {
	case ServiceStateRunning, ServiceStateAvailable, ServiceStateStopped,
		ServiceStateRetired, ServiceStateTerminated, ServiceStateUnavailable:
		return true
	case ServiceStateUnknown, ServiceStatePending, ServiceStateProvisioning, ServiceStateStarting, ServiceStateStopping:
		return false
	}
	// external states copied through (failed, canceled, ...) are terminal
	// for this workflow: the coordinator never retries a finished job
	return true
}
