package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carichat/pkg/caricature"
	"carichat/pkg/character"
)

// Config carries the facts the capability endpoints report and where locally
// generated images live on disk.
type Config struct {
	ImageDir            string
	ReplicateConfigured bool
	LocalSDURL          string
}

type Server struct {
	Echo       *echo.Echo
	Characters *character.Service
	Images     *caricature.Chain
	Config     Config
}

func NewServer(characters *character.Service, images *caricature.Chain, cfg Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:       e,
		Characters: characters,
		Images:     images,
		Config:     cfg,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/upload-pdf", s.handlePostUploadPDF)
	api.GET("/upload-pdf", s.handleGetUploadPDF)
	api.POST("/chat", s.handlePostChat)
	api.GET("/chat", s.handleGetChat)
	api.POST("/generate-image", s.handlePostGenerateImage)
	api.GET("/generate-image", s.handleGetGenerateImage)

	if s.Config.ImageDir != "" {
		s.Echo.Static("/images/caricatures", s.Config.ImageDir)
	}
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
