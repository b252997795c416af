package databases

// go generate: mockery --name ModeratorCodeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/moderator-codes/models"
)

// DefaultModeratorCodeCollection is the collection used when none is configured
const DefaultModeratorCodeCollection = "moderatorCodes"

// ModeratorCodeDatabase contains the methods to use with the moderatorCode database
type ModeratorCodeDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ModeratorCode, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ModeratorCode, error)
	ReplaceOne(ctx context.Context, moderatorCode models.ModeratorCode) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error)
}

type moderatorCodeDatabase struct {
	db         DatabaseHelper
	collection string
}

// NewModeratorCodeDatabase initializes a new instance of moderatorCode database with the provided db connection.
// An empty collection name falls back to DefaultModeratorCodeCollection.
func NewModeratorCodeDatabase(db DatabaseHelper, collection string) ModeratorCodeDatabase {
	if collection == "" {
		collection = DefaultModeratorCodeCollection
	}
	return &moderatorCodeDatabase{
		db:         db,
		collection: collection,
	}
}

func (c *moderatorCodeDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ModeratorCode, error) {
	moderatorCode := &models.ModeratorCode{}
	err := c.db.Collection(c.collection).FindOne(ctx, filter, opts...).Decode(&moderatorCode)
	if err != nil {
		return nil, err
	}
	return moderatorCode, nil
}

func (c *moderatorCodeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ModeratorCode, error) {
	var moderatorCodes []models.ModeratorCode
	cur, err := c.db.Collection(c.collection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(ctx, &moderatorCodes)
	if err != nil {
		return nil, err
	}
	return moderatorCodes, nil
}

// ReplaceOne writes the record under its code, inserting it when absent.
// An existing record with the same code is overwritten.
func (c *moderatorCodeDatabase) ReplaceOne(ctx context.Context, moderatorCode models.ModeratorCode) error {
	_, err := c.db.Collection(c.collection).ReplaceOne(ctx, bson.M{"_id": moderatorCode.ID}, moderatorCode, options.Replace().SetUpsert(true))
	return err
}

func (c *moderatorCodeDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	res, err := c.db.Collection(c.collection).DeleteOne(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
