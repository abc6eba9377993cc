package types

import "errors"

// Config describes where the store keeps its backing file.
type Config struct {
	// DataDir is the directory holding grimoire.db. Created if missing.
	DataDir string
}

// ErrInvalidConfig is returned by Config.Validate for unusable configs.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrInvalidConfig
	}
	return nil
}
