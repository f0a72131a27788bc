package requestRepo

import (
	"context"
	"fmt"
	"time"

	"dogspot/database"
	"dogspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a RequestRepository backed by the "requests"
// collection.
func NewMongoRequestRepo() RequestRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("requests")
	return &MongoRequestRepo{coll: coll}
}

func (r *MongoRequestRepo) GetByID(id string) (*models.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var request models.Request
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &request, nil
}

func (r *MongoRequestRepo) GetAll() ([]models.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	defer cursor.Close(ctx)
	var requests []models.Request
	for cursor.Next(ctx) {
		var req models.Request
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) GetByClientID(clientID string) ([]models.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to find requests for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)
	var requests []models.Request
	for cursor.Next(ctx) {
		var req models.Request
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MongoRequestRepo) Create(request *models.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) Update(request *models.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": request.ID}, bson.M{"$set": request})
	if err != nil {
		return fmt.Errorf("failed to update request with id %s: %w", request.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request with id %s not found", request.ID)
	}
	return nil
}

func (r *MongoRequestRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete request with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("request with id %s not found", id)
	}
	return nil
}
