package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds the parameters of the automatic draw rules.
type RulesConfig struct {
	// HalfmoveLimit is the number of plies without a pawn move or capture
	// that draws the game (100 = the 50-move rule)
	HalfmoveLimit int

	// RepetitionStride is the ply distance between position records compared
	// for threefold repetition. 2 compares every position with the same side
	// to move; 4 reproduces the stride of older saved games.
	RepetitionStride int
}

// NewRulesConfig creates a RulesConfig with the standard rules.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		HalfmoveLimit:    100,
		RepetitionStride: 2,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.HalfmoveLimit <= 0 {
		return fmt.Errorf("halfmove limit (%d) must be positive: %w", r.HalfmoveLimit, errors.ErrInvalidConfig)
	}
	if r.RepetitionStride <= 0 {
		return fmt.Errorf("repetition stride (%d) must be positive: %w", r.RepetitionStride, errors.ErrInvalidConfig)
	}
	return nil
}
