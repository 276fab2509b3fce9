package config

// RulesConfig holds settings that change how moves are judged.
type RulesConfig struct {
	// StrictCastling additionally rejects castling out of check and
	// castling across a square the opponent attacks.
	StrictCastling bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
