// Package record defines the structured, persistable form of one log event.
package record

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Record is one log event as stored in the document store.
//
// ID is assigned by the persistence layer and is omitted from the encoded
// document while nil, so the store can assign it. Level is stored as its name
// ("INFO") so documents stay readable without this package.
type Record struct {
	ID      *bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Time    time.Time      `bson:"time" json:"time"`
	Level   Severity       `bson:"level" json:"level"`
	Target  string         `bson:"target" json:"target"`
	Message string         `bson:"message" json:"message"`
	Fields  map[string]any `bson:"fields,omitempty" json:"fields,omitempty"`
}

// Build constructs a Record for an event that happened at now. The time is
// normalised to UTC at millisecond resolution, the precision of a BSON
// datetime, so a stored Record compares equal to the one that was built.
func Build(sev Severity, source, message string, now time.Time) Record {
	return Record{
		Time:    now.UTC().Truncate(time.Millisecond),
		Level:   sev,
		Target:  source,
		Message: message,
	}
}

// HasID reports whether the store has assigned an identity.
func (r Record) HasID() bool {
	return r.ID != nil
}

// WithID returns a copy of r carrying the given identity.
func (r Record) WithID(id bson.ObjectID) Record {
	r.ID = &id
	return r
}

// Marshal encodes r as a BSON document.
func Marshal(r Record) ([]byte, error) {
	return bson.Marshal(r)
}

// Unmarshal decodes a BSON document into a Record. Documents that already
// carry an _id keep it; an unknown level name is an error.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	if err := bson.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
