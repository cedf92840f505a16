// Package store provides the persistence targets of the sink: a MongoDB
// collection and an in-memory collection for tests and dry runs.
package store

import (
	"context"
	"net/url"
	"time"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectOptions describes how to reach the document store.
type ConnectOptions struct {
	URI            string
	AppName        string
	ConnectTimeout time.Duration
	DriverLogLevel string // "", "info" or "debug"; empty disables driver logs
}

// Client owns the driver connection for the life of the process.
type Client struct {
	client   *mongo.Client
	endpoint string
	logger   *logging.ColoredLogger
}

// Connect opens a connection and pings the primary. Any failure is a startup
// error.
func Connect(ctx context.Context, opts ConnectOptions, logger *logging.ColoredLogger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.URI == "" {
		return nil, apperrors.NewConfigError("mongo.uri", "connection string is empty")
	}
	endpoint := Endpoint(opts.URI)

	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.AppName != "" {
		clientOpts.SetAppName(opts.AppName)
	}
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(opts.ConnectTimeout)
	}
	if lvl, ok := driverLevel(opts.DriverLogLevel); ok {
		clientOpts.SetLoggerOptions(options.Logger().
			SetSink(NewDriverLogSink(logger)).
			SetComponentLevel(options.LogComponentAll, lvl))
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, apperrors.NewUnavailableError(endpoint, "failed to create client", err)
	}

	pingCtx := ctx
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.NewUnavailableError(endpoint, "failed to reach primary", err)
	}

	logger.ComponentInfo(logging.ComponentStore, "Connected to document store", zap.String("endpoint", endpoint))
	return &Client{client: client, endpoint: endpoint, logger: logger}, nil
}

// Endpoint returns the host part of a connection string, without credentials.
func Endpoint(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}

// Endpoint returns the host the client is connected to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// DatabaseNames lists the databases visible to the connection.
func (c *Client) DatabaseNames(ctx context.Context) ([]string, error) {
	names, err := c.client.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.NewUnavailableError(c.endpoint, "failed to list databases", err)
	}
	return names, nil
}

// Collection returns the sink target for database/collection.
func (c *Client) Collection(database, collection string) *Mongo {
	return NewMongo(c.client.Database(database).Collection(collection))
}

// Disconnect closes the connection pool.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return apperrors.Wrap(err, "failed to disconnect")
	}
	c.logger.ComponentDebug(logging.ComponentStore, "Disconnected from document store", zap.String("endpoint", c.endpoint))
	return nil
}

// Mongo is a sink target backed by a collection. Inserts use the driver's
// default write options.
type Mongo struct {
	coll *mongo.Collection
}

// NewMongo wraps an existing collection handle.
func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

// Name returns "<database>.<collection>".
func (m *Mongo) Name() string {
	return m.coll.Database().Name() + "." + m.coll.Name()
}

// InsertOne writes one record; the store assigns its identity.
func (m *Mongo) InsertOne(ctx context.Context, rec record.Record) error {
	_, err := m.coll.InsertOne(ctx, rec)
	return err
}

// InsertMany writes a batch of records in one round trip.
func (m *Mongo) InsertMany(ctx context.Context, recs []record.Record) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]any, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}
	_, err := m.coll.InsertMany(ctx, docs)
	return err
}
