package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/utils"
)

const serviceCollection = "services"

func (db *MongoDB) GetServices(userID string) ([]models.Service, error) {
	services := []models.Service{}

	filter := bson.D{}
	if userID != "" {
		orders, err := db.GetOrders(userID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(orders))
		for _, order := range orders {
			ids = append(ids, order.ServiceID)
		}
		filter = bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	}

	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	cur, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting services: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(context.TODO(), &services); err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}

	return services, nil
}

func (db *MongoDB) GetServicesByStates(states ...models.ServiceState) ([]models.Service, error) {
	services := []models.Service{}

	filter := bson.D{{Key: "state", Value: bson.D{{Key: "$in", Value: states}}}}

	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	cur, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting services by state: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(context.TODO(), &services); err != nil {
		return nil, fmt.Errorf("error fetching services by state: %w", err)
	}

	return services, nil
}

func (db *MongoDB) GetServiceByID(id string) (*models.Service, error) {
	var service models.Service

	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting service: %w", err)
	}

	return &service, nil
}

// CreateService inserts the service, assigning its identifier once. An id
// already present is kept as is.
func (db *MongoDB) CreateService(service *models.Service) (string, error) {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt

	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	if _, err := collection.InsertOne(ctx, service); err != nil {
		return "", fmt.Errorf("error inserting service: %w", err)
	}

	return service.ID, nil
}

func (db *MongoDB) UpdateServiceStatus(id string, state models.ServiceState, message string) error {
	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	res, err := collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "state", Value: state},
			{Key: "status_msg", Value: message},
			{Key: "updated_at", Value: time.Now()},
		}}})
	if err != nil {
		return fmt.Errorf("error updating service status: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrResourceNotFound
	}

	return nil
}

// ClaimServiceJob sets the external job handle only when none is recorded
// yet. The filter makes the check-then-set a single atomic update, two racing
// submissions cannot both claim the service.
func (db *MongoDB) ClaimServiceJob(id, jobID string) (bool, error) {
	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	res, err := collection.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "$or", Value: bson.A{
				bson.D{{Key: "external_job_id", Value: bson.D{{Key: "$exists", Value: false}}}},
				bson.D{{Key: "external_job_id", Value: ""}},
			}},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "external_job_id", Value: jobID},
			{Key: "updated_at", Value: time.Now()},
		}}})
	if err != nil {
		return false, fmt.Errorf("error claiming service job: %w", err)
	}

	return res.MatchedCount == 1, nil
}

// ClearServiceJob removes the recorded job handle so a later advance submits
// afresh. Administrative action only.
func (db *MongoDB) ClearServiceJob(id string) error {
	collection := db.Database.Collection(serviceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	res, err := collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$unset", Value: bson.D{{Key: "external_job_id", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
		})
	if err != nil {
		return fmt.Errorf("error clearing service job: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrResourceNotFound
	}

	return nil
}
