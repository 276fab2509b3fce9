// Package server exposes live games over HTTP and websockets.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// Server routes requests to the games held by a session manager.
type Server struct {
	cfg   *config.Config
	app   *fiber.App
	games *session.Manager
	hub   *hub
}

// New builds the fiber app and registers every route.
func New(cfg *config.Config, games *session.Manager) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.Server == nil {
		cfg.Server = config.NewServerConfig()
	}

	s := &Server{
		cfg:   cfg,
		games: games,
		hub:   newHub(),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "chess-rules",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.Verbosity > 0 && cfg.LogFile != nil {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	api := s.app.Group("/api")
	api.Post("/games", s.createGame)
	api.Get("/games/:id", s.getGame)
	api.Delete("/games/:id", s.deleteGame)
	api.Post("/games/:id/moves", s.submitMove)
	api.Post("/games/:id/setup", s.setupGame)
	api.Get("/games/:id/legal", s.legalMoves)

	s.app.Get("/ws/games/:id", s.upgrade, websocket.New(s.serveGame, websocket.Config{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
	}))

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown is called.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, closing open connections.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError turns a handler error into a JSON error response.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	resp := ErrorResponse{Error: err.Error()}
	var moveErr *chesserrors.MoveError
	if errors.As(err, &moveErr) {
		resp.Reason = moveErr.Reason
	}
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.cfg.Logf(1, "%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(resp)
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, chesserrors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, chesserrors.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, chesserrors.ErrInvalidFEN),
		errors.Is(err, chesserrors.ErrMalformedNotation),
		errors.Is(err, chesserrors.ErrOutOfRange):
		return fiber.StatusBadRequest
	case errors.Is(err, chesserrors.ErrIllegalMove),
		errors.Is(err, chesserrors.ErrInvalidPosition):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
