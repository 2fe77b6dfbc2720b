package models

import (
	"bytes"
	"html/template"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string
type EventLogLevel string

const (
	EventServiceProvisionRequested EventType = "SERVICE_PROVISION_REQUESTED"
	EventServiceProvisioned        EventType = "SERVICE_PROVISIONED"
	EventServiceProvisionFailed    EventType = "SERVICE_PROVISION_FAILED"
	EventServiceReset              EventType = "SERVICE_RESET"
	EventOrderCompleted            EventType = "ORDER_COMPLETED"

	EventLogLevelINFO  EventLogLevel = "INFO"
	EventLogLevelERROR EventLogLevel = "ERROR"
)

type Event struct {
	// ID is the event identifier
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	// Type is the event type
	Type EventType `json:"type" bson:"type"`
	// CreatedAt is the time the event was created
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	// Originator is the user that created the event
	Originator string `json:"originator" bson:"originator"`
	// UserID is the user that the event is about
	UserID string `json:"user_id" bson:"user_id"`
	// UserEmail is the user email that the event is about
	UserEmail string `json:"user_email" bson:"user_email"`
	// ServiceID is the service the event relates to, if any
	ServiceID string `json:"service_id,omitempty" bson:"service_id,omitempty"`
	// Notify is a flag to indicate if the user should be notified
	Notify bool `json:"notify" bson:"notify"`
	// NotifyAdmin is a flag to indicate if the admin should be notified
	NotifyAdmin bool `json:"notify_admin" bson:"notify_admin"`
	// Notified is a flag to indicate if the user has been notified
	Notified bool `json:"notified" bson:"notified"`
	// Log contains all the event information
	Log EventLog `json:"log" bson:"log"`
}

type EventLog struct {
	Level   EventLogLevel `json:"level" bson:"level"`
	Message string        `json:"message" bson:"message"`
}

type EventResponse struct {
	// TotalPages is the total number of pages
	TotalPages int64 `json:"total_pages"`
	// TotalItems is the total number of items
	TotalItems int64 `json:"total_items"`
	// Events is the list of events
	Events []Event `json:"events"`
	// Links contains the links for the current page, next page and last page
	Links Links `json:"links"`
}

func NewEvent(userID, originator string, typ EventType) *Event {
	return &Event{
		Type:       typ,
		CreatedAt:  time.Now(),
		UserID:     userID,
		Originator: originator,
	}
}

// SetNotify sets the notify flag
func (e *Event) SetNotify() {
	e.Notify = true
}

// SetNotifyAdmin sets the notify admin flag
func (e *Event) SetNotifyAdmin() {
	e.NotifyAdmin = true
}

// SetNotified sets the notified flag
func (e *Event) SetNotified(b bool) {
	e.Notified = b
}

func (e *Event) SetService(id string) {
	e.ServiceID = id
}

func (e *Event) SetLog(level EventLogLevel, message string) {
	e.Log = EventLog{
		Level:   level,
		Message: message,
	}
}

var bodyTemplate = `
{{- if .Log.Message -}}
Hi,

{{ .Log.Message }}

Please visit the Reef self-service portal for more details.

Note: This is an auto-generated email. Please do not reply to this email.
Generated at: {{ .CreatedAt.Format "Jan 02, 2006 15:04:05 UTC" }}

Thanks,
Reef Portal Support.
{{- end -}}
`

func (e *Event) ComposeMailBody() (string, error) {
	tmpl, err := template.New("reef").Parse(bodyTemplate)
	if err != nil {
		return "", err
	}
	var tpl bytes.Buffer
	if err := tmpl.Execute(&tpl, e); err != nil {
		return "", err
	}
	return tpl.String(), nil
}
