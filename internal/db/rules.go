package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Versioned rule documents live in mongo, one flagged active
type RulesDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewRulesDB() (*RulesDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("REWARDS_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env REWARDS_MONGO is not set")
	}

	opts := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	coll := client.Database("rewardsDB").Collection("rule_documents")

	return &RulesDB{client, coll}, nil
}

func (r *RulesDB) GetActiveDocument(ctx context.Context) (model.RuleDocument, error) {
	var doc model.RuleDocument
	err := r.coll.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.RuleDocument{}, fmt.Errorf("active rule document %w", model.ErrNotFound)
		}
		return model.RuleDocument{}, err
	}
	return doc, nil
}

func (r *RulesDB) GetDocument(ctx context.Context, version string) (model.RuleDocument, error) {
	var doc model.RuleDocument
	err := r.coll.FindOne(ctx, bson.M{"version": version}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.RuleDocument{}, fmt.Errorf("rule document %s %w", version, model.ErrNotFound)
		}
		return model.RuleDocument{}, err
	}
	return doc, nil
}

func (r *RulesDB) GetAllDocuments(ctx context.Context) ([]model.RuleDocument, error) {
	var docs []model.RuleDocument
	result, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var doc model.RuleDocument
		err := result.Decode(&doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// PublishDocument inserts the document as active and deactivates the rest.
// Published versions are immutable, a version tag cannot be reused.
func (r *RulesDB) PublishDocument(ctx context.Context, doc model.RuleDocument) error {
	if doc.Version == "" {
		return fmt.Errorf("rule document version is required")
	}
	count, err := r.coll.CountDocuments(ctx, bson.M{"version": doc.Version})
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("rule document version %s is already published", doc.Version)
	}

	_, err = r.coll.UpdateMany(ctx, bson.M{"active": true}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	doc.Active = true
	_, err = r.coll.InsertOne(ctx, doc)
	return err
}

func (r *RulesDB) Ping(ctx context.Context) error {
	return r.mgo.Ping(ctx, nil)
}
