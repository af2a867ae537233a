package config

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Unicode draws pieces as chess glyphs instead of FEN letters
	Unicode bool

	// Color shades light and dark squares with ANSI backgrounds
	Color bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// ShowFEN prints the position record under the board
	ShowFEN bool

	// MaxLineLength wraps move lists
	MaxLineLength int

	// JSON writes game reports as JSON instead of text
	JSON bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates:   true,
		MaxLineLength: 80,
	}
}
