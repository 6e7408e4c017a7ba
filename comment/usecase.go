package comment

import (
	"context"
	"errors"
)

type Service interface {
	ListComments(ctx context.Context, movieID string) ([]Comment, error)
	AddComment(ctx context.Context, movieID string, c Comment) (InsertResult, error)
	GetComment(ctx context.Context, movieID, commentID string) (Comment, error)
	DeleteComment(ctx context.Context, movieID, commentID string) error
	UpdateComment(ctx context.Context, movieID, commentID string, updates map[string]any) (Comment, error)
}

// Repository is the comment storage port. FindOne and FindByID return
// ErrNotFound when nothing matches.
type Repository interface {
	FindByMovie(ctx context.Context, movieID string) ([]Comment, error)
	Insert(ctx context.Context, movieID string, c Comment) (InsertResult, error)
	FindOne(ctx context.Context, movieID, commentID string) (Comment, error)
	FindByID(ctx context.Context, commentID string) (Comment, error)
	DeleteByID(ctx context.Context, commentID string) (int64, error)
	UpdateByID(ctx context.Context, commentID string, updates map[string]any) (UpdateResult, error)
}

// MovieChecker reports whether a movie exists.
type MovieChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	r      Repository
	movies MovieChecker
}

func NewUsecase(r Repository, movies MovieChecker) *Usecase {
	return &Usecase{
		r:      r,
		movies: movies,
	}
}

func (uc *Usecase) ListComments(ctx context.Context, movieID string) ([]Comment, error) {
	if err := uc.checkMovie(ctx, movieID); err != nil {
		return nil, err
	}
	return uc.r.FindByMovie(ctx, movieID)
}

func (uc *Usecase) AddComment(ctx context.Context, movieID string, c Comment) (InsertResult, error) {
	if err := uc.checkMovie(ctx, movieID); err != nil {
		return InsertResult{}, err
	}
	if c == nil {
		c = Comment{}
	}
	return uc.r.Insert(ctx, movieID, c)
}

func (uc *Usecase) GetComment(ctx context.Context, movieID, commentID string) (Comment, error) {
	return uc.r.FindOne(ctx, movieID, commentID)
}

// DeleteComment checks the comment belongs to the movie, then deletes it by
// its own id.
func (uc *Usecase) DeleteComment(ctx context.Context, movieID, commentID string) error {
	if _, err := uc.r.FindOne(ctx, movieID, commentID); err != nil {
		return err
	}
	_, err := uc.r.DeleteByID(ctx, commentID)
	return err
}

// UpdateComment applies updates to the comment with commentID. The scoped
// lookup does not guard the write: the update runs even when the comment is
// not attached to movieID, and only the response reports ErrNotFound.
func (uc *Usecase) UpdateComment(ctx context.Context, movieID, commentID string, updates map[string]any) (Comment, error) {
	if len(updates) == 0 {
		return nil, ErrInvalidUpdates
	}

	_, lookupErr := uc.r.FindOne(ctx, movieID, commentID)
	if lookupErr != nil && !errors.Is(lookupErr, ErrNotFound) {
		return nil, lookupErr
	}

	res, err := uc.r.UpdateByID(ctx, commentID, updates)
	if err != nil {
		return nil, err
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	updated, err := uc.r.FindByID(ctx, commentID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if res.Modified != 1 {
		return nil, ErrNotModified
	}
	return updated, err
}

func (uc *Usecase) checkMovie(ctx context.Context, movieID string) error {
	ok, err := uc.movies.Exists(ctx, movieID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMovieNotFound
	}
	return nil
}
