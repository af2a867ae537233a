package config

// SessionConfig holds settings for an interactive game.
type SessionConfig struct {
	SaveFile      string // Snapshot written on "save"
	LoadFile      string // Snapshot to resume instead of a new game
	CheckWarnings bool   // Announce the pieces giving check after each move
	ShowMoveList  bool   // Print the moves played when the game ends
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		SaveFile:      "chess-save.json",
		CheckWarnings: true,
	}
}
