package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// AllowOrigins is the CORS origin list passed to the cors middleware
	// and the websocket upgrader.
	AllowOrigins string

	ReadBufferSize  int
	WriteBufferSize int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		AllowOrigins:    "*",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadBufferSize <= 0 || s.WriteBufferSize <= 0 {
		return fmt.Errorf("websocket buffer sizes (%d, %d) must be positive: %w",
			s.ReadBufferSize, s.WriteBufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
