package sitterRepo

import (
	"context"
	"fmt"
	"time"

	"dogspot/database"
	"dogspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSitterRepo implements SitterRepository using MongoDB.
type MongoSitterRepo struct {
	coll *mongo.Collection
}

// NewMongoSitterRepo creates a SitterRepository backed by the "sitters"
// collection.
func NewMongoSitterRepo() SitterRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("sitters")
	return &MongoSitterRepo{coll: coll}
}

func (r *MongoSitterRepo) GetByID(id string) (*models.Sitter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sitter models.Sitter
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sitter); err != nil {
		return nil, fmt.Errorf("failed to fetch sitter with id %s: %w", id, err)
	}
	return &sitter, nil
}

func (r *MongoSitterRepo) GetByEmail(email string) (*models.Sitter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sitter models.Sitter
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&sitter); err != nil {
		return nil, fmt.Errorf("failed to fetch sitter with email %s: %w", email, err)
	}
	return &sitter, nil
}

func (r *MongoSitterRepo) GetAll() ([]models.Sitter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sitters: %w", err)
	}
	defer cursor.Close(ctx)
	var sitters []models.Sitter
	for cursor.Next(ctx) {
		var s models.Sitter
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode sitter: %w", err)
		}
		sitters = append(sitters, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return sitters, nil
}

func (r *MongoSitterRepo) GetByNeighborhood(neighborhood string) ([]models.Sitter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"neighborhoods": neighborhood})
	if err != nil {
		return nil, fmt.Errorf("failed to find sitters for neighborhood %s: %w", neighborhood, err)
	}
	defer cursor.Close(ctx)
	var sitters []models.Sitter
	for cursor.Next(ctx) {
		var s models.Sitter
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode sitter: %w", err)
		}
		sitters = append(sitters, s)
	}
	return sitters, nil
}

func (r *MongoSitterRepo) Create(sitter *models.Sitter) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, sitter); err != nil {
		return fmt.Errorf("failed to create sitter: %w", err)
	}
	return nil
}

func (r *MongoSitterRepo) Update(sitter *models.Sitter) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": sitter.ID}, bson.M{"$set": sitter})
	if err != nil {
		return fmt.Errorf("failed to update sitter with id %s: %w", sitter.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("sitter with id %s not found", sitter.ID)
	}
	return nil
}

func (r *MongoSitterRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete sitter with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("sitter with id %s not found", id)
	}
	return nil
}
