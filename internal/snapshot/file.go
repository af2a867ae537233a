package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movement"
)

// SaveFile writes a snapshot to path. The file is written under a
// temporary name in the same directory and renamed into place, so an
// earlier snapshot at path survives a failed save.
func SaveFile(path string, g *engine.Game) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if err = Save(f, g); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// LoadFile reads the snapshot at path. Decoding errors carry the file name.
func LoadFile(path string, tables *movement.Tables, rules engine.Rules) (*engine.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Load(f, tables, rules)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return g, nil
}
