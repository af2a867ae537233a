package config

// DuplicateConfig holds settings for duplicate snapshot detection.
type DuplicateConfig struct {
	// Report flags snapshots whose game repeats an earlier one
	Report bool

	// ExactMatch also requires the same move sequence, so transposed
	// games reaching the same position are not duplicates
	ExactMatch bool
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
