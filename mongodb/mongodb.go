package mongodb

import (
	"context"
	"errors"
	"fmt"
	"mflix/comment"
	"mflix/movie"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MoviesCollection   = "movies"
	CommentsCollection = "comments"

	defaultConnectTimeout = 10 * time.Second
)

type Options struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// NewConnection connects to MongoDB, pings the primary and returns the
// configured database handle. Callers own the client and must disconnect it
// through db.Client().
func NewConnection(ctx context.Context, opts Options) (*mongo.Database, error) {
	if strings.TrimSpace(opts.URI) == "" {
		return nil, errors.New("mongodb: uri is required")
	}
	if strings.TrimSpace(opts.Database) == "" {
		return nil, errors.New("mongodb: database name is required")
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetBSONOptions(&options.BSONOptions{
			DefaultDocumentM: true,
			IntMinSize:       true,
		})

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client.Database(opts.Database), nil
}

// EnsureIndexes creates the indexes the repositories query on and returns
// their names.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	comments, err := db.Collection(CommentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: comment.MovieIDField, Value: 1}},
		Options: options.Index().SetName("movie_id_1"),
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb: create comment indexes: %w", err)
	}

	// sparse so that movies created through the API may omit the key
	movies, err := db.Collection(MoviesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: movie.MovieLensIDField, Value: 1}},
		Options: options.Index().SetName("movielens_id_1").SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb: create movie indexes: %w", err)
	}
	return []string{comments, movies}, nil
}

func parseObjectID(id string, invalid error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, invalid
	}
	return oid, nil
}

func insertedID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
