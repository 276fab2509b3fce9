package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BatchConfig holds settings for batch position classification.
type BatchConfig struct {
	// Workers is the number of classification goroutines.
	// 0 means use runtime.NumCPU().
	Workers int

	// BufferSize is the capacity of the work and result channels.
	BufferSize int

	// JSONFormat writes one JSON object per line instead of text
	JSONFormat bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
