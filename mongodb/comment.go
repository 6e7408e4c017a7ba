package mongodb

import (
	"context"
	"errors"
	"fmt"
	"mflix/comment"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentRepository implements comment.Repository on the comments collection.
type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection(CommentsCollection)}
}

// FindByMovie returns every comment of the movie in natural order. The
// result is never nil.
func (r *CommentRepository) FindByMovie(ctx context.Context, movieID string) ([]comment.Comment, error) {
	movieOID, err := parseObjectID(movieID, comment.ErrInvalidMovieID)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{comment.MovieIDField: movieOID})
	if err != nil {
		return nil, fmt.Errorf("mongodb: find comments: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode comments: %w", err)
	}

	comments := make([]comment.Comment, 0, len(docs))
	for _, doc := range docs {
		comments = append(comments, comment.Comment(doc))
	}
	return comments, nil
}

// Insert stores c with its movie reference set to movieID, overriding any
// movie_id the caller supplied.
func (r *CommentRepository) Insert(ctx context.Context, movieID string, c comment.Comment) (comment.InsertResult, error) {
	movieOID, err := parseObjectID(movieID, comment.ErrInvalidMovieID)
	if err != nil {
		return comment.InsertResult{}, err
	}

	doc := make(bson.M, len(c)+1)
	for k, v := range c {
		doc[k] = v
	}
	doc[comment.MovieIDField] = movieOID

	res, err := r.collection.InsertOne(ctx, doc)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return comment.InsertResult{Acknowledged: false}, nil
	}
	if err != nil {
		return comment.InsertResult{}, fmt.Errorf("mongodb: insert comment: %w", err)
	}

	return comment.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedID(res.InsertedID),
	}, nil
}

// FindOne returns the comment only if it belongs to the movie.
func (r *CommentRepository) FindOne(ctx context.Context, movieID, commentID string) (comment.Comment, error) {
	movieOID, err := parseObjectID(movieID, comment.ErrInvalidID)
	if err != nil {
		return nil, err
	}
	commentOID, err := parseObjectID(commentID, comment.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": commentOID, comment.MovieIDField: movieOID})
}

func (r *CommentRepository) FindByID(ctx context.Context, commentID string) (comment.Comment, error) {
	commentOID, err := parseObjectID(commentID, comment.ErrInvalidID)
	if err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": commentOID})
}

func (r *CommentRepository) DeleteByID(ctx context.Context, commentID string) (int64, error) {
	commentOID, err := parseObjectID(commentID, comment.ErrInvalidID)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentOID})
	if err != nil {
		return 0, fmt.Errorf("mongodb: delete comment: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *CommentRepository) UpdateByID(ctx context.Context, commentID string, updates map[string]any) (comment.UpdateResult, error) {
	commentOID, err := parseObjectID(commentID, comment.ErrInvalidID)
	if err != nil {
		return comment.UpdateResult{}, err
	}

	res, err := r.collection.UpdateByID(ctx, commentOID, bson.M{"$set": updates})
	if err != nil {
		return comment.UpdateResult{}, fmt.Errorf("mongodb: update comment: %w", err)
	}
	return comment.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (r *CommentRepository) findOne(ctx context.Context, filter bson.M) (comment.Comment, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, comment.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: find comment: %w", err)
	}
	return comment.Comment(doc), nil
}
