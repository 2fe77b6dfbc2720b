package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ProjectReef/reef/internal/pkg/provision/refdata"
)

var _ refdata.Resolver = &Resolver{}

// collections maps a lookup category to its backing collection. Every
// collection holds documents of the form {key: <raw id>, display: <value>}.
var collections = map[refdata.Category]string{
	refdata.CategoryDataCenter:   "data_centers",
	refdata.CategoryOSImage:      "os_images",
	refdata.CategoryTemplate:     "templates",
	refdata.CategoryProdStatus:   "prod_statuses",
	refdata.CategoryBusinessUnit: "business_units",
	refdata.CategoryCostCenter:   "cost_centers",
	refdata.CategoryDomain:       "domains",
}

type record struct {
	Key     string `bson:"key"`
	Display string `bson:"display"`
}

// Resolver looks reference data up from mongo collections, one per category.
type Resolver struct {
	database *mongo.Database
}

func New(database *mongo.Database) *Resolver {
	return &Resolver{database: database}
}

func (r *Resolver) Resolve(ctx context.Context, category refdata.Category, key string) (string, error) {
	collection, ok := collections[category]
	if !ok {
		return "", fmt.Errorf("unknown reference data category %q: %w", category, refdata.ErrNotFound)
	}

	var rec record
	err := r.database.Collection(collection).FindOne(ctx, bson.D{{Key: "key", Value: key}}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return "", fmt.Errorf("no %s record for key %q: %w", category, key, refdata.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("error looking up %s key %q: %v: %w", category, key, err, refdata.ErrUnavailable)
	}

	return rec.Display, nil
}
