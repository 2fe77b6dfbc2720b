package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

func (db *MongoDB) GetProductByID(id string) (*models.Product, error) {
	var product models.Product

	collection := db.Database.Collection("products")
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting product: %w", err)
	}

	return &product, nil
}

func (db *MongoDB) GetProviderByID(id string) (*models.Provider, error) {
	var provider models.Provider

	collection := db.Database.Collection("providers")
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&provider)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting provider: %w", err)
	}

	return &provider, nil
}
