// Package testhelpers holds fakes shared by command tests.
package testhelpers

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/moderator-codes/models"
)

// MemoryModeratorCodeDatabase is an in-memory databases.ModeratorCodeDatabase keyed by code.
// Filters may be empty or match on "_id" only.
type MemoryModeratorCodeDatabase struct {
	mu      sync.Mutex
	records map[string]models.ModeratorCode
	// Err, when set, is returned by every call
	Err error
}

// NewMemoryModeratorCodeDatabase returns an empty store
func NewMemoryModeratorCodeDatabase() *MemoryModeratorCodeDatabase {
	return &MemoryModeratorCodeDatabase{records: map[string]models.ModeratorCode{}}
}

func idFilter(filter interface{}) (string, bool, error) {
	m, ok := filter.(bson.M)
	if !ok {
		return "", false, fmt.Errorf("unsupported filter type %T", filter)
	}
	if len(m) == 0 {
		return "", false, nil
	}
	id, ok := m["_id"].(string)
	if !ok || len(m) != 1 {
		return "", false, fmt.Errorf("unsupported filter %v", m)
	}
	return id, true, nil
}

// FindOne returns the record matching filter or mongo.ErrNoDocuments
func (d *MemoryModeratorCodeDatabase) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) (*models.ModeratorCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	id, byID, err := idFilter(filter)
	if err != nil {
		return nil, err
	}
	for k, rec := range d.records {
		if !byID || k == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// Find returns every record matching filter
func (d *MemoryModeratorCodeDatabase) Find(_ context.Context, filter interface{}, _ ...*options.FindOptions) ([]models.ModeratorCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	id, byID, err := idFilter(filter)
	if err != nil {
		return nil, err
	}
	res := []models.ModeratorCode{}
	for k, rec := range d.records {
		if !byID || k == id {
			res = append(res, rec)
		}
	}
	return res, nil
}

// ReplaceOne upserts the record under its ID
func (d *MemoryModeratorCodeDatabase) ReplaceOne(_ context.Context, moderatorCode models.ModeratorCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.records[moderatorCode.ID] = moderatorCode
	return nil
}

// DeleteOne removes the matching record, reporting how many were removed
func (d *MemoryModeratorCodeDatabase) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return 0, d.Err
	}
	id, byID, err := idFilter(filter)
	if err != nil {
		return 0, err
	}
	if !byID {
		return 0, fmt.Errorf("refusing to delete without an _id filter")
	}
	if _, ok := d.records[id]; !ok {
		return 0, nil
	}
	delete(d.records, id)
	return 1, nil
}

// Len reports how many records are stored
func (d *MemoryModeratorCodeDatabase) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}
