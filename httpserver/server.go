package httpserver

import (
	"context"
	"errors"
	"fmt"
	"mflix/comment"
	"mflix/errs"
	"mflix/movie"
	"mflix/pkg/config"
	"mflix/pkg/logger"
	"mflix/pkg/sentry"
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// Requests per second allowed per client IP, 0 disables rate limiting
	RateLimit float64

	Logger *zap.SugaredLogger

	MovieService movie.Service

	CommentService comment.Service
}

func Default(cfg *config.Config) *Server {
	s := &Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		RateLimit:    cfg.RateLimit,
		Logger:       logger.NOOPLogger,
	}
	if origins := splitOrigins(cfg.AllowOrigins); len(origins) > 0 {
		s.AllowOrigins = origins
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()

	api := s.Router.Group("/api")
	s.RegisterHealthRoutes()
	s.RegisterMovieRoutes(api)
	s.RegisterCommentRoutes(api)
	return s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Router.Use(s.requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	if s.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(s.RateLimit),
			Burst: max(1, int(s.RateLimit)),
		})
		s.Router.Use(middleware.RateLimiter(store))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("HTTP request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
				"ip", v.RemoteIP,
				"user_agent", v.UserAgent,
			)
			return nil
		},
	})
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func (s *Server) customHTTPErrorHandler(err error, c echo.Context) {
	// the request logger already ran the handler for this error
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(),
			"request_id", requestID(c),
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
		)
		sentry.WithContext(c).Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = writeError(c, code, message)
	}
	if err != nil {
		s.Logger.Error(err)
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
