package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shekokarmahesh/contract-intelligence-parser/config"
	"github.com/shekokarmahesh/contract-intelligence-parser/model"
	"github.com/shekokarmahesh/contract-intelligence-parser/pipeline"
)

const contractsCollection = "contracts"

// MongoStore is the MongoDB-backed ContractStore.
type MongoStore struct {
	client    *mongo.Client
	contracts *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies the connection and ensures
// the contract_id index exists.
func NewMongoStore(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	s := &MongoStore{
		client:    client,
		contracts: client.Database(cfg.Database).Collection(contractsCollection),
	}
	if err := s.createIndexes(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return s, nil
}

func (s *MongoStore) createIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "contract_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	_, err := s.contracts.Indexes().CreateMany(ctx, models)
	return err
}

func (s *MongoStore) Save(ctx context.Context, contract *model.Contract) error {
	contract.UpdatedAt = time.Now()

	filter := bson.M{"contract_id": contract.ID}
	update := bson.M{"$set": contract}
	opts := options.Update().SetUpsert(true)

	_, err := s.contracts.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *MongoStore) Get(ctx context.Context, id string) (*model.Contract, error) {
	var c model.Contract
	err := s.contracts.FindOne(ctx, bson.M{"contract_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *MongoStore) List(ctx context.Context, opts ListOptions) ([]*model.Contract, int64, error) {
	opts.Normalize()

	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}

	total, err := s.contracts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	direction := -1
	if opts.Ascending {
		direction = 1
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: sortKey(opts.SortBy), Value: direction}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cursor, err := s.contracts.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var contracts []*model.Contract
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, 0, err
	}
	return contracts, total, nil
}

// sortKey maps API sort names to document fields.
func sortKey(name string) string {
	if name == "score" {
		return "analysis.score"
	}
	return name
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.contracts.DeleteOne(ctx, bson.M{"contract_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, id, status, errMsg string) error {
	return s.updateFields(ctx, id, bson.M{"status": status, "error": errMsg})
}

func (s *MongoStore) UpdateProgress(ctx context.Context, id string, progress int) error {
	return s.updateFields(ctx, id, bson.M{"progress": progress})
}

func (s *MongoStore) SetAnalysis(ctx context.Context, id string, result *pipeline.Result) error {
	return s.updateFields(ctx, id, bson.M{
		"analysis": result,
		"status":   model.StatusCompleted,
		"progress": 100,
	})
}

func (s *MongoStore) updateFields(ctx context.Context, id string, fields bson.M) error {
	fields["updated_at"] = time.Now()

	res, err := s.contracts.UpdateOne(ctx, bson.M{"contract_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	disconnectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Disconnect(disconnectCtx)
}
