package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Lesson.validate(); err != nil {
		return fmt.Errorf("lesson: %w", err)
	}

	if c.Import.Timeout <= 0 {
		return fmt.Errorf("import.timeout must be > 0 (got %v)", c.Import.Timeout)
	}

	return nil
}

func (l *LessonConfig) validate() error {
	if strings.TrimSpace(l.LanguageFrom) == "" {
		return fmt.Errorf("language_from is required")
	}
	if strings.TrimSpace(l.LanguageTo) == "" {
		return fmt.Errorf("language_to is required")
	}
	return nil
}
