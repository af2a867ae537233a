package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the number of parallel workers for offline tools.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateReport enables duplicate snapshot reporting.
func (b *ConfigBuilder) WithDuplicateReport(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Report = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithUnicode enables Unicode piece glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithColor enables ANSI square shading.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithFEN prints the position record under the board.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithMaxLineLength sets the width move lists are wrapped at.
func (b *ConfigBuilder) WithMaxLineLength(n int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithJSON selects JSON game reports.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithHalfmoveLimit sets the number of plies that triggers the 50-move draw.
func (b *ConfigBuilder) WithHalfmoveLimit(plies int) *ConfigBuilder {
	b.cfg.Rules.HalfmoveLimit = plies
	return b
}

// WithRepetitionStride sets the ply distance between compared positions.
func (b *ConfigBuilder) WithRepetitionStride(plies int) *ConfigBuilder {
	b.cfg.Rules.RepetitionStride = plies
	return b
}

// WithSaveFile sets the snapshot file written on "save".
func (b *ConfigBuilder) WithSaveFile(path string) *ConfigBuilder {
	b.cfg.Session.SaveFile = path
	return b
}

// WithLoadFile sets a snapshot to resume.
func (b *ConfigBuilder) WithLoadFile(path string) *ConfigBuilder {
	b.cfg.Session.LoadFile = path
	return b
}

// WithCheckWarnings toggles the check announcement after each move.
func (b *ConfigBuilder) WithCheckWarnings(enabled bool) *ConfigBuilder {
	b.cfg.Session.CheckWarnings = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithCoordinates toggles file and rank labels around the board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithShowMoveList prints the moves played when a game ends.
func (b *ConfigBuilder) WithShowMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Session.ShowMoveList = enabled
	return b
}
