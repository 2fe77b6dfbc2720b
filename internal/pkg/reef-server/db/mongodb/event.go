package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

const eventCollection = "events"

func (db *MongoDB) NewEvent(e *models.Event) error {
	collection := db.Database.Collection(eventCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("error inserting Event: %w", err)
	}

	return nil
}

// GetEventsByUserID returns all events by user id
func (db *MongoDB) GetEventsByUserID(id string, startIndex, perPage int64) ([]models.Event, int64, error) {
	events := []models.Event{}
	var totalCount int64

	filter := bson.D{{}}
	if id != "" {
		filter = bson.D{{Key: "user_id", Value: id}}
	}

	findOptions := options.Find()
	findOptions.SetSkip(startIndex)
	findOptions.SetLimit(perPage)

	collection := db.Database.Collection(eventCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	cur, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, totalCount, fmt.Errorf("error getting events: %w", err)
	}
	defer cur.Close(ctx)

	if err = cur.All(context.Background(), &events); err != nil {
		return nil, totalCount, fmt.Errorf("error fetching events: %w", err)
	}
	// Get the total number of events from the database
	totalCount, err = collection.CountDocuments(context.Background(), filter)
	if err != nil {
		return nil, totalCount, fmt.Errorf("error getting total count of events: %w", err)
	}

	return events, totalCount, nil
}

// WatchEvents streams newly inserted events into ch until the change stream
// errors out.
func (db *MongoDB) WatchEvents(ch chan<- *models.Event) error {
	collection := db.Database.Collection(eventCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "insert"}}}},
	}
	stream, err := collection.Watch(context.Background(), pipeline)
	if err != nil {
		return fmt.Errorf("error watching events: %w", err)
	}
	defer stream.Close(context.Background())

	for stream.Next(context.Background()) {
		var change struct {
			FullDocument models.Event `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			return fmt.Errorf("error decoding event change: %w", err)
		}
		event := change.FullDocument
		ch <- &event
	}

	return stream.Err()
}

func (db *MongoDB) MarkEventAsNotified(id string) error {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	collection := db.Database.Collection(eventCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbContextTimeout)
	defer cancel()
	_, err = collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: objectId}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "notified", Value: true}}}})
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	return nil
}
