package httpserver

import (
	"mflix/errs"
	"mflix/movie"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies, s.requireMovieService)
	g.POST("/movies", s.handleCreateMovie, s.requireMovieService)
	registerMethodHint(g, "/movies", http.MethodGet, http.MethodPost)

	g.GET("/movie/:idMovie", s.handleGetMovie, s.requireMovieService)
	g.DELETE("/movie/:idMovie", s.handleDeleteMovie, s.requireMovieService)
	g.PUT("/movie/:idMovie", s.handleUpdateMovie, s.requireMovieService)
	registerMethodHint(g, "/movie/:idMovie", http.MethodGet, http.MethodDelete, http.MethodPut)
}

func (s *Server) requireMovieService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
		}
		return next(c)
	}
}

// handleListMovies godoc
// @Summary List Movies
// @Description First 10 movies in natural order
// @Tags movies
// @Produce json
// @Success 200 {object} APIResponse{data=[]movie.Movie}
// @Failure 500 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []movie.Movie{}
	}

	return writeData(c, http.StatusOK, movies)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Store the request body as a new movie document
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse{data=movie.InsertResult}
// @Failure 400 {object} APIResponse
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}

	res, err := s.MovieService.CreateMovie(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	return writeMessage(c, http.StatusCreated, "Movie created successfully", res)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Success 200 {object} APIResponse{data=movie.Movie}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	var p MovieParams
	if err := bindParams(c, &p, movie.ErrInvalidID); err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), p.MovieID)
	if err != nil {
		return err
	}

	return writeData(c, http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	var p MovieParams
	if err := bindParams(c, &p, movie.ErrInvalidID); err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), p.MovieID); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Movie deleted successfully", nil)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Merge the fields of updates into the movie
// @Tags movies
// @Accept json
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Success 200 {object} APIResponse{data=movie.Movie}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	var p MovieParams
	if err := bindParams(c, &p, movie.ErrInvalidID); err != nil {
		return err
	}

	updates, err := bindUpdates(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), p.MovieID, updates)
	if err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Fields updated successfully", m)
}
