package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cours-d-espagnol/castellano"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 0..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be > 0")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if dir := c.Lexicon.DataDir; dir != "" {
		fi, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("lexicon.data_dir: %w", err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("lexicon.data_dir %s is not a directory", dir)
		}
	}

	if err := c.Defaults.validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

func (d DefaultsConfig) validate() error {
	_, err := castellano.NewRequest("", d.Dialect, d.Mode, d.SpeakerGender, d.YouForm)
	return err
}
