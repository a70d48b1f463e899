package api

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/signrelay/signrelay/pkg"
)

// Config holds the http server settings.
type Config struct {
	Address     string
	PublicDir   string
	EnableCORS  bool
	LogRequests bool
	Logger      *logrus.Logger
}

// Server hosts the api routes and the static frontend.
type Server struct {
	config Config
	router *echo.Echo
}

// New builds the echo server: middleware, api routes and static hosting.
func New(config Config, client pkg.SigningClient) *Server {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	if config.LogRequests {
		router.Use(RequestLogger(config.Logger))
	}
	if config.EnableCORS {
		router.Use(middleware.CORS())
	}

	RegisterHandlers(router, &Wrapper{Auth: client})

	if config.PublicDir != "" {
		router.Static("/", config.PublicDir)
	}

	return &Server{config: config, router: router}
}

// Start binds the listening socket and serves until Shutdown is called.
func (s *Server) Start() error {
	s.config.Logger.Infof("signing relay listening on %s", s.config.Address)
	return s.router.Start(s.config.Address)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.router.Shutdown(ctx)
}
