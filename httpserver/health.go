package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Success 200 {object} APIResponse
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return writeData(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}
