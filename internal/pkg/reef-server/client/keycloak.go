package client

import (
	"context"

	"github.com/Nerzal/gocloak/v13"
)

// KeyCloakConfig holds the configuration for Keycloak operations
type KeyCloakConfig struct {
	Hostname    string
	AccessToken string
	Realm       string
	UserID      string
	Roles       []string
}

// KeyCloakClient implements Keycloak
type KeyCloakClient struct {
	ctx    context.Context
	config KeyCloakConfig
	client *gocloak.GoCloak
}

var NewKeyCloakClient = func(config KeyCloakConfig, ctx context.Context) Keycloak {
	return &KeyCloakClient{
		ctx:    ctx,
		config: config,
		client: gocloak.NewClient(config.Hostname),
	}
}

func (k *KeyCloakClient) GetClient() *gocloak.GoCloak {
	return k.client
}

func (k *KeyCloakClient) GetUser(id string) (*gocloak.User, error) {
	return k.client.GetUserByID(k.ctx, k.config.AccessToken, k.config.Realm, id)
}

func (k *KeyCloakClient) GetUserInfo() (*gocloak.UserInfo, error) {
	return k.client.GetUserInfo(k.ctx, k.config.AccessToken, k.config.Realm)
}

func (k *KeyCloakClient) IsRole(name string) bool {
	for _, role := range k.config.Roles {
		if role == name {
			return true
		}
	}
	return false
}

func (k *KeyCloakClient) GetUserID() string {
	return k.config.UserID
}

// GetConfigFromContext gets config from context
func GetConfigFromContext(ctx context.Context) KeyCloakConfig {
	config := KeyCloakConfig{
		Hostname:    ctx.Value("keycloak_hostname").(string),
		AccessToken: ctx.Value("keycloak_access_token").(string),
		Realm:       ctx.Value("keycloak_realm").(string),
	}

	if userID := ctx.Value("userid"); userID != nil {
		config.UserID = userID.(string)
	}

	if roles := ctx.Value("roles"); roles != nil {
		config.Roles = roles.([]string)
	}

	return config
}
