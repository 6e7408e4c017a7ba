package httpserver

import (
	"mflix/comment"
	"mflix/errs"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/movie/:idMovie/comments", s.handleListComments, s.requireCommentService)
	g.POST("/movie/:idMovie/comments", s.handleAddComment, s.requireCommentService)
	registerMethodHint(g, "/movie/:idMovie/comments", http.MethodGet, http.MethodPost)

	g.GET("/movie/:idMovie/comment/:idComment", s.handleGetComment, s.requireCommentService)
	g.DELETE("/movie/:idMovie/comment/:idComment", s.handleDeleteComment, s.requireCommentService)
	g.PUT("/movie/:idMovie/comment/:idComment", s.handleUpdateComment, s.requireCommentService)
	registerMethodHint(g, "/movie/:idMovie/comment/:idComment", http.MethodGet, http.MethodDelete, http.MethodPut)
}

func (s *Server) requireCommentService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.CommentService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "comment service not configured")
		}
		return next(c)
	}
}

// handleListComments godoc
// @Summary List Comments
// @Description All comments of a movie in natural order
// @Tags comments
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Success 200 {object} APIResponse{data=[]comment.Comment}
// @Failure 400 {object} APIResponse
// @Router /api/movie/{idMovie}/comments [get]
func (s *Server) handleListComments(c echo.Context) error {
	var p MovieParams
	if err := bindParams(c, &p, comment.ErrInvalidMovieID); err != nil {
		return err
	}

	comments, err := s.CommentService.ListComments(c.Request().Context(), p.MovieID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []comment.Comment{}
	}

	return writeData(c, http.StatusOK, comments)
}

// handleAddComment godoc
// @Summary Add Comment
// @Description Attach the request body as a comment of the movie
// @Tags comments
// @Accept json
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Success 200 {object} APIResponse{data=comment.InsertResult}
// @Failure 400 {object} APIResponse
// @Router /api/movie/{idMovie}/comments [post]
func (s *Server) handleAddComment(c echo.Context) error {
	var p MovieParams
	if err := bindParams(c, &p, comment.ErrInvalidMovieID); err != nil {
		return err
	}

	doc, err := bindDocument(c)
	if err != nil {
		return err
	}

	res, err := s.CommentService.AddComment(c.Request().Context(), p.MovieID, doc)
	if err != nil {
		return err
	}

	return writeData(c, http.StatusOK, res)
}

// handleGetComment godoc
// @Summary Get Comment
// @Tags comments
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Param idComment path string true "Comment ObjectID"
// @Success 200 {object} APIResponse{data=comment.Comment}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie}/comment/{idComment} [get]
func (s *Server) handleGetComment(c echo.Context) error {
	var p CommentParams
	if err := bindParams(c, &p, comment.ErrInvalidID); err != nil {
		return err
	}

	cm, err := s.CommentService.GetComment(c.Request().Context(), p.MovieID, p.CommentID)
	if err != nil {
		return err
	}

	return writeData(c, http.StatusOK, cm)
}

// handleDeleteComment godoc
// @Summary Delete Comment
// @Tags comments
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Param idComment path string true "Comment ObjectID"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie}/comment/{idComment} [delete]
func (s *Server) handleDeleteComment(c echo.Context) error {
	var p CommentParams
	if err := bindParams(c, &p, comment.ErrInvalidID); err != nil {
		return err
	}

	if err := s.CommentService.DeleteComment(c.Request().Context(), p.MovieID, p.CommentID); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Comment deleted successfully", nil)
}

// handleUpdateComment godoc
// @Summary Update Comment
// @Description Merge the fields of updates into the comment
// @Tags comments
// @Accept json
// @Produce json
// @Param idMovie path string true "Movie ObjectID"
// @Param idComment path string true "Comment ObjectID"
// @Success 200 {object} APIResponse{data=comment.Comment}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movie/{idMovie}/comment/{idComment} [put]
func (s *Server) handleUpdateComment(c echo.Context) error {
	var p CommentParams
	if err := bindParams(c, &p, comment.ErrInvalidID); err != nil {
		return err
	}

	updates, err := bindUpdates(c)
	if err != nil {
		return err
	}

	cm, err := s.CommentService.UpdateComment(c.Request().Context(), p.MovieID, p.CommentID, updates)
	if err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Comment updated successfully", cm)
}
