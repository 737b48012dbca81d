package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Lesson   LessonConfig   `yaml:"lesson"`
	Import   ImportConfig   `yaml:"import"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LessonConfig holds defaults for lessons created by imports.
type LessonConfig struct {
	LanguageFrom      string `yaml:"language_from"      env:"LESSON_LANGUAGE_FROM"      env-default:"japanese"`
	LanguageTo        string `yaml:"language_to"        env:"LESSON_LANGUAGE_TO"        env-default:"ukrainian"`
	ImportDescription string `yaml:"import_description" env:"LESSON_IMPORT_DESCRIPTION" env-default:"Imported from CSV"`
}

// ImportConfig holds settings for a single CLI run.
type ImportConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"IMPORT_TIMEOUT" env-default:"2m"`
}
