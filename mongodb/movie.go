package mongodb

import (
	"context"
	"errors"
	"fmt"
	"mflix/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MovieRepository implements movie.Repository on the movies collection.
type MovieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{collection: db.Collection(MoviesCollection)}
}

// Find returns up to limit movies in natural order.
func (r *MovieRepository) Find(ctx context.Context, limit int) ([]movie.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find movies: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode movies: %w", err)
	}

	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = movie.Movie(doc)
	}
	return movies, nil
}

func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (movie.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, bson.M(m))
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return movie.InsertResult{Acknowledged: false}, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return movie.InsertResult{}, movie.ErrConflict
	}
	if err != nil {
		return movie.InsertResult{}, fmt.Errorf("mongodb: insert movie: %w", err)
	}

	return movie.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedID(res.InsertedID),
	}, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := parseObjectID(id, movie.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, movie.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: find movie: %w", err)
	}
	return movie.Movie(doc), nil
}

func (r *MovieRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := parseObjectID(id, movie.ErrInvalidID)
	if err != nil {
		return false, err
	}

	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("mongodb: count movies: %w", err)
	}
	return n > 0, nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id, movie.ErrInvalidID)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("mongodb: delete movie: %w", err)
	}
	return res.DeletedCount, nil
}

// UpdateByID $sets the given fields, leaving every other field untouched.
func (r *MovieRepository) UpdateByID(ctx context.Context, id string, updates map[string]any) (movie.UpdateResult, error) {
	oid, err := parseObjectID(id, movie.ErrInvalidID)
	if err != nil {
		return movie.UpdateResult{}, err
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": updates})
	if mongo.IsDuplicateKeyError(err) {
		return movie.UpdateResult{}, movie.ErrConflict
	}
	if err != nil {
		return movie.UpdateResult{}, fmt.Errorf("mongodb: update movie: %w", err)
	}
	return movie.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

// UpsertMany replaces every movie sharing the value of key with the given
// document, inserting it when none exists. Writes are unordered.
func (r *MovieRepository) UpsertMany(ctx context.Context, key string, movies []movie.Movie) (movie.UpsertResult, error) {
	if len(movies) == 0 {
		return movie.UpsertResult{}, nil
	}

	models := make([]mongo.WriteModel, 0, len(movies))
	for _, m := range movies {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{key: m[key]}).
			SetReplacement(bson.M(m)).
			SetUpsert(true))
	}

	res, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return movie.UpsertResult{}, fmt.Errorf("mongodb: upsert movies: %w", err)
	}
	return movie.UpsertResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
		Upserted: res.UpsertedCount,
	}, nil
}
