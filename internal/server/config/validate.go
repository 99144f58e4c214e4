package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the assembled configuration against the struct tags on
// Config and reports every violation at once.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
