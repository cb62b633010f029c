package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo stores generated mazes, one document per maze.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a MazeRepo over dbName.collectionName.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes supports listing an owner's mazes newest first.
func (m *MazeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or replaces a maze record.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a maze record by its ID.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &record, nil
}

// ByOwner returns up to limit of the owner's mazes, newest first.
func (m *MazeRepo) ByOwner(ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := m.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*dmn.MazeRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding mazes: %w", err)
	}
	return records, nil
}
