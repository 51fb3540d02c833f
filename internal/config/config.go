// Package config loads the tutor configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Progress   ProgressConfig   `mapstructure:"progress"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Practice   PracticeConfig   `mapstructure:"practice"`
	Reports    ReportsConfig    `mapstructure:"reports"`
}

type ProgressConfig struct {
	// FilePath is the JSON ledger tracking per-word practice history.
	FilePath string `mapstructure:"file_path" validate:"required"`
}

type VocabularyConfig struct {
	DatabasePath string `mapstructure:"database_path" validate:"required"`
	// SMARToolCSV and NorwegianCSV are optional import sources; the
	// import command also accepts paths as arguments.
	SMARToolCSV  string `mapstructure:"smartool_csv" validate:"omitempty,file"`
	NorwegianCSV string `mapstructure:"norwegian_csv" validate:"omitempty,file"`
}

type PracticeConfig struct {
	WordsPerSession int `mapstructure:"words_per_session" validate:"min=1,max=50"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/russian-tutor")
	}

	v.SetDefault("progress.file_path", filepath.Join("data", "word_practice_data.json"))
	v.SetDefault("vocabulary.database_path", filepath.Join("data", "vocabulary.db"))
	v.SetDefault("practice.words_per_session", 10)
	v.SetDefault("reports.directory", filepath.Join("outputs", "reports"))

	if err := v.BindEnv("progress.file_path", "RUSSIAN_TUTOR_PROGRESS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind RUSSIAN_TUTOR_PROGRESS_FILE environment variable: %w", err)
	}
	if err := v.BindEnv("vocabulary.database_path", "RUSSIAN_TUTOR_VOCABULARY_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind RUSSIAN_TUTOR_VOCABULARY_DB environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration and returns all violations as
// a single error with translated messages.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}

	return nil
}
