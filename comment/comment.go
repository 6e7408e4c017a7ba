package comment

import "mflix/errs"

// MovieIDField is the document key holding the owning movie reference.
const MovieIDField = "movie_id"

var (
	ErrInvalidID      = errs.Errorf(errs.EINVALID, "invalid movie or comment ID")
	ErrInvalidMovieID = errs.Errorf(errs.EINVALID, "invalid movie ID")
	ErrInvalidUpdates = errs.Errorf(errs.EINVALID, "invalid updates")
	// ErrMovieNotFound is reported as a bad request, not a missing resource.
	ErrMovieNotFound = errs.Errorf(errs.EINVALID, "movie does not exist")
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "no comment found with this ID for this movie")
	ErrNotModified   = errs.Errorf(errs.ENOTFOUND, "comment not found or no changes made")
)

// Comment is a free-form comment document tied to a movie by MovieIDField.
type Comment map[string]any

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Matched  int64
	Modified int64
}
