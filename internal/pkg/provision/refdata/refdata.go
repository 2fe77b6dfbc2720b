package refdata

import (
	"context"
	"errors"
)

// Category identifies one of the reference data lookup tables.
type Category string

const (
	CategoryDataCenter   Category = "data_center"
	CategoryOSImage      Category = "os_image"
	CategoryTemplate     Category = "template"
	CategoryProdStatus   Category = "prod_status"
	CategoryBusinessUnit Category = "business_unit"
	CategoryCostCenter   Category = "cost_center"
	CategoryDomain       Category = "domain"
)

var (
	// ErrNotFound is returned when the key has no matching record.
	ErrNotFound = errors.New("reference data record not found")
	// ErrUnavailable is returned when the reference data service cannot be
	// reached. Lookups are side-effect free, callers may retry.
	ErrUnavailable = errors.New("reference data service unavailable")
)

//go:generate mockgen -destination=mock_resolver.go -package=refdata . Resolver

// Resolver translates an opaque reference-data key into the long-form
// display value the orchestration engine expects.
type Resolver interface {
	Resolve(ctx context.Context, category Category, key string) (string, error)
}
