package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

const orderCollection = "orders"

func (db *MongoDB) GetOrders(userID string) ([]models.Order, error) {
	orders := []models.Order{}

	filter := bson.D{}
	if userID != "" {
		filter = bson.D{{Key: "user_id", Value: userID}}
	}

	collection := db.Database.Collection(orderCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	cur, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting orders: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(context.TODO(), &orders); err != nil {
		return nil, fmt.Errorf("error fetching orders: %w", err)
	}

	return orders, nil
}

func (db *MongoDB) GetOrderByID(id string) (*models.Order, error) {
	var order models.Order

	collection := db.Database.Collection(orderCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting order: %w", err)
	}

	return &order, nil
}

func (db *MongoDB) GetOrderByServiceID(serviceID string) (*models.Order, error) {
	var order models.Order

	collection := db.Database.Collection(orderCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	err := collection.FindOne(ctx, bson.D{{Key: "service_id", Value: serviceID}}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting order for service %s: %w", serviceID, err)
	}

	return &order, nil
}

func (db *MongoDB) UpdateOrderStatus(id string, status models.OrderStatus) error {
	collection := db.Database.Collection(orderCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	res, err := collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now()},
		}}})
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrResourceNotFound
	}

	return nil
}
