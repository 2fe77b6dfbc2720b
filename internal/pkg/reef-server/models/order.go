package models

import "time"

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusApproved     OrderStatus = "approved"
	OrderStatusProvisioning OrderStatus = "provisioning"
	OrderStatusCompleted    OrderStatus = "completed"
	OrderStatusRejected     OrderStatus = "rejected"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// Order groups a single service with its billing/approval metadata. Order
// completion is derivative of the service reaching a running state, it is
// never set ahead of it.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user_id" bson:"user_id"`
	ServiceID string      `json:"service_id" bson:"service_id"`
	ProductID string      `json:"product_id" bson:"product_id"`
	ProjectID string      `json:"project_id" bson:"project_id,omitempty"`
	Status    OrderStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at,omitempty"`
}
