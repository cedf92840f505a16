package store

import (
	"context"
	"sync"

	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory stores records in memory and assigns identities the way the
// document store does. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	records  []record.Record
	inserts  int
	writeErr error
}

// NewMemory creates an empty in-memory collection.
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes every subsequent insert fail with err; nil restores writes.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// InsertOne stores rec under a fresh ObjectID.
func (m *Memory) InsertOne(ctx context.Context, rec record.Record) error {
	return m.insert(ctx, []record.Record{rec})
}

// InsertMany stores recs atomically: either all are stored or none.
func (m *Memory) InsertMany(ctx context.Context, recs []record.Record) error {
	return m.insert(ctx, recs)
}

func (m *Memory) insert(ctx context.Context, recs []record.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	if m.writeErr != nil {
		return m.writeErr
	}
	for _, rec := range recs {
		if rec.ID == nil {
			rec = rec.WithID(bson.NewObjectID())
		}
		m.records = append(m.records, rec)
	}
	return nil
}

// Records returns a copy of the stored records in insertion order.
func (m *Memory) Records() []record.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]record.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Inserts returns the number of insert calls, failed ones included.
func (m *Memory) Inserts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserts
}
