package movie

import "mflix/errs"

// ListLimit is the number of movies returned by a collection listing.
const ListLimit = 10

// MovieLensIDField keys the movies imported from the MovieLens dataset.
const MovieLensIDField = "movielens_id"

var (
	ErrInvalidID      = errs.Errorf(errs.EINVALID, "invalid ID")
	ErrInvalidUpdates = errs.Errorf(errs.EINVALID, "invalid updates")
	ErrNotFound       = errs.Errorf(errs.ENOTFOUND, "no movie found with this ID")
	ErrConflict       = errs.Errorf(errs.ECONFLICT, "a movie with this MovieLens ID already exists")
)

// Movie is a schema-less movie document. The only field the service
// relies on is "_id".
type Movie map[string]any

// InsertResult is returned after a document has been stored.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports how many documents an update touched.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// UpsertResult reports the outcome of a bulk import.
type UpsertResult struct {
	Matched  int64
	Modified int64
	Upserted int64
}
