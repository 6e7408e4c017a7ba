package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"mflix/comment"
	"mflix/httpserver"
	"mflix/movie"
	"mflix/pkg/config"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	movieID   = "573a1390f29313caabcd4135"
	commentID = "5a9427648b0beebeb69579e7"
	absentID  = "000000000000000000000000"
)

func testConfig() *config.Config {
	return &config.Config{}
}

// apiResponse mirrors httpserver.APIResponse with a raw data field.
type apiResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	require.Equal(t, rec.Code, resp.Status, "envelope status matches HTTP status")
	return resp
}

func decodeAPIData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var data T
	resp := decodeAPIResponse(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

func newTestServer(movies movie.Service, comments comment.Service) *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = movies
	server.CommentService = comments
	return server
}

func doRequest(server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) CreateMovie(ctx context.Context, mv movie.Movie) (movie.InsertResult, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.InsertResult), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id string, updates map[string]any) (movie.Movie, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(movie.Movie), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, movieID string) ([]comment.Comment, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comment.Comment), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, movieID string, c comment.Comment) (comment.InsertResult, error) {
	args := m.Called(ctx, movieID, c)
	return args.Get(0).(comment.InsertResult), args.Error(1)
}

func (m *MockCommentService) GetComment(ctx context.Context, movieID, commentID string) (comment.Comment, error) {
	args := m.Called(ctx, movieID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(comment.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, movieID, commentID string) error {
	args := m.Called(ctx, movieID, commentID)
	return args.Error(0)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, movieID, commentID string, updates map[string]any) (comment.Comment, error) {
	args := m.Called(ctx, movieID, commentID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(comment.Comment), args.Error(1)
}
