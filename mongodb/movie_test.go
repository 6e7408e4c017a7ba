package mongodb_test

import (
	"context"
	"fmt"
	"mflix/movie"
	"mflix/mongodb"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const absentID = "000000000000000000000000"

func TestMovieRepository_InsertAndFindByID(t *testing.T) {
	db := CreateConnection(t, "movie_insert_test")
	repo := mongodb.NewMovieRepository(db)

	t.Run("stores the document and returns its generated id", func(t *testing.T) {
		cleanupDatabase(t, db)

		res, err := repo.Insert(context.Background(), movie.Movie{"title": "The Iron Giant", "year": int64(1999)})

		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		assert.True(t, primitive.IsValidObjectID(res.InsertedID))

		got, err := repo.FindByID(context.Background(), res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, "The Iron Giant", got["title"])
		assert.Equal(t, int32(1999), got["year"], "integers are stored in the smallest bson int")
	})

	t.Run("decodes nested documents as maps", func(t *testing.T) {
		cleanupDatabase(t, db)

		res, err := repo.Insert(context.Background(), movie.Movie{
			"title": "The Iron Giant",
			"imdb":  map[string]any{"rating": 8.0, "votes": int64(191758)},
		})
		require.NoError(t, err)

		got, err := repo.FindByID(context.Background(), res.InsertedID)
		require.NoError(t, err)
		assert.IsType(t, bson.M{}, got["imdb"])
	})

	t.Run("reports absent movies", func(t *testing.T) {
		cleanupDatabase(t, db)

		_, err := repo.FindByID(context.Background(), absentID)

		assert.Equal(t, movie.ErrNotFound, err)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), "not-an-id")

		assert.Equal(t, movie.ErrInvalidID, err)
	})
}

func TestMovieRepository_Find(t *testing.T) {
	db := CreateConnection(t, "movie_find_test")
	repo := mongodb.NewMovieRepository(db)

	t.Run("never returns more than the limit", func(t *testing.T) {
		cleanupDatabase(t, db)
		mustCreateMovies(t, db, 15)

		movies, err := repo.Find(context.Background(), movie.ListLimit)

		require.NoError(t, err)
		assert.Len(t, movies, movie.ListLimit)
	})

	t.Run("returns an empty list on an empty collection", func(t *testing.T) {
		cleanupDatabase(t, db)

		movies, err := repo.Find(context.Background(), movie.ListLimit)

		require.NoError(t, err)
		assert.Empty(t, movies)
	})
}

func TestMovieRepository_Exists(t *testing.T) {
	db := CreateConnection(t, "movie_exists_test")
	repo := mongodb.NewMovieRepository(db)
	cleanupDatabase(t, db)
	ids := mustCreateMovies(t, db, 1)

	ok, err := repo.Exists(context.Background(), ids[0].Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), absentID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMovieRepository_DeleteByID(t *testing.T) {
	db := CreateConnection(t, "movie_delete_test")
	repo := mongodb.NewMovieRepository(db)
	cleanupDatabase(t, db)
	ids := mustCreateMovies(t, db, 2)

	n, err := repo.DeleteByID(context.Background(), ids[0].Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteByID(context.Background(), ids[0].Hex())
	require.NoError(t, err)
	assert.Zero(t, n, "deleting twice removes nothing")

	_, err = repo.FindByID(context.Background(), ids[1].Hex())
	assert.NoError(t, err, "other movies are kept")
}

func TestMovieRepository_UpdateByID(t *testing.T) {
	db := CreateConnection(t, "movie_update_test")
	repo := mongodb.NewMovieRepository(db)

	t.Run("merges only the given fields", func(t *testing.T) {
		cleanupDatabase(t, db)
		res, err := repo.Insert(context.Background(), movie.Movie{"title": "The Iron Giant", "year": int64(1999), "rated": "PG"})
		require.NoError(t, err)

		upd, err := repo.UpdateByID(context.Background(), res.InsertedID, map[string]any{"year": int64(2022)})
		require.NoError(t, err)
		assert.Equal(t, movie.UpdateResult{Matched: 1, Modified: 1}, upd)

		got, err := repo.FindByID(context.Background(), res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, int32(2022), got["year"])
		assert.Equal(t, "The Iron Giant", got["title"])
		assert.Equal(t, "PG", got["rated"])
	})

	t.Run("is idempotent", func(t *testing.T) {
		cleanupDatabase(t, db)
		res, err := repo.Insert(context.Background(), movie.Movie{"title": "The Iron Giant"})
		require.NoError(t, err)
		updates := map[string]any{"title": "Le Géant de fer"}

		_, err = repo.UpdateByID(context.Background(), res.InsertedID, updates)
		require.NoError(t, err)
		first, err := repo.FindByID(context.Background(), res.InsertedID)
		require.NoError(t, err)

		upd, err := repo.UpdateByID(context.Background(), res.InsertedID, updates)
		require.NoError(t, err)
		second, err := repo.FindByID(context.Background(), res.InsertedID)
		require.NoError(t, err)

		assert.Equal(t, movie.UpdateResult{Matched: 1, Modified: 0}, upd)
		assert.Equal(t, first, second)
	})

	t.Run("matches nothing for an absent movie", func(t *testing.T) {
		cleanupDatabase(t, db)

		upd, err := repo.UpdateByID(context.Background(), absentID, map[string]any{"year": int64(2022)})

		require.NoError(t, err)
		assert.Equal(t, movie.UpdateResult{}, upd)
	})
}

func mustCreateMovies(t testing.TB, db *mongo.Database, n int) []primitive.ObjectID {
	t.Helper()
	ids := make([]primitive.ObjectID, n)
	docs := make([]interface{}, n)
	for i := range docs {
		ids[i] = primitive.NewObjectID()
		docs[i] = bson.M{"_id": ids[i], "title": fmt.Sprintf("Movie %d", i)}
	}
	_, err := db.Collection(mongodb.MoviesCollection).InsertMany(context.Background(), docs)
	require.NoError(t, err)
	return ids
}

func TestMovieRepository_UpsertMany(t *testing.T) {
	db := CreateConnection(t, "movie_upsert_test")
	repo := mongodb.NewMovieRepository(db)

	t.Run("inserts then replaces by key", func(t *testing.T) {
		cleanupDatabase(t, db)
		docs := []movie.Movie{
			{movie.MovieLensIDField: 1, "title": "Toy Story (1995)"},
			{movie.MovieLensIDField: 2, "title": "Jumanji (1995)"},
		}

		res, err := repo.UpsertMany(context.Background(), movie.MovieLensIDField, docs)
		require.NoError(t, err)
		assert.Equal(t, movie.UpsertResult{Upserted: 2}, res)

		docs[1]["title"] = "Jumanji"
		res, err = repo.UpsertMany(context.Background(), movie.MovieLensIDField, docs)
		require.NoError(t, err)
		assert.Equal(t, movie.UpsertResult{Matched: 2, Modified: 1}, res)

		n, err := db.Collection(mongodb.MoviesCollection).CountDocuments(context.Background(), bson.M{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("does nothing without movies", func(t *testing.T) {
		res, err := repo.UpsertMany(context.Background(), movie.MovieLensIDField, nil)

		require.NoError(t, err)
		assert.Equal(t, movie.UpsertResult{}, res)
	})
}

func TestMovieRepository_DuplicateMovieLensID(t *testing.T) {
	db := CreateConnection(t, "movie_conflict_test")
	repo := mongodb.NewMovieRepository(db)
	_, err := mongodb.EnsureIndexes(context.Background(), db)
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), movie.Movie{movie.MovieLensIDField: 1, "title": "Toy Story"})
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), movie.Movie{movie.MovieLensIDField: 1, "title": "Toy Story 2"})
	assert.ErrorIs(t, err, movie.ErrConflict)

	// the sparse index ignores movies without the key
	_, err = repo.Insert(context.Background(), movie.Movie{"title": "The Iron Giant"})
	assert.NoError(t, err)
	_, err = repo.Insert(context.Background(), movie.Movie{"title": "The Iron Giant"})
	assert.NoError(t, err)
}
