package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath        = "friends.yaml"
	DefaultJournalPath = "./friends.md"
	DefaultLogLevel    = "warn"
)

type Config struct {
	Journal Journal `yaml:"journal"`
	Log     Log     `yaml:"log"`
}

type Journal struct {
	// Path to the journal markdown file
	Path string `yaml:"path" example:"./friends.md" validate:"required"`
}

type Log struct {
	// Minimum level written to stderr
	Level string `yaml:"level" example:"warn" validate:"omitempty,oneof=debug info warn error"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890" validate:"required_with=Token"`
}

// Load reads the config file at path. A missing file is not an error, defaults are used instead.
func Load(path string) (*Config, error) {
	var result Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err == nil {
		if err = yaml.Unmarshal(data, &result); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if result.Journal.Path == "" {
		result.Journal.Path = DefaultJournalPath
	}
	if result.Log.Level == "" {
		result.Log.Level = DefaultLogLevel
	}

	if err = result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return oops.Errorf("failed to validate config: %w", err)
	}

	return nil
}
