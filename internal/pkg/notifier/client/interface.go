package client

import "github.com/ProjectReef/reef/internal/pkg/reef-server/models"

type Notifier interface {
	Notify(event models.Event) error
}
