package client

import (
	"github.com/Nerzal/gocloak/v13"
)

//go:generate mockgen -destination=mock_keycloak.go -package=client . Keycloak
type Keycloak interface {
	GetClient() *gocloak.GoCloak
	GetUser(id string) (*gocloak.User, error)
	GetUserInfo() (*gocloak.UserInfo, error)
	IsRole(name string) bool
	GetUserID() string
}
