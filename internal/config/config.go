package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/sandeepkv93/samtodo/internal/model"
)

const (
	DefaultBind        = "127.0.0.1:8080"
	DefaultTitle       = "Todo List"
	DefaultContainerID = "app"
	DefaultInputField  = "inputText"
	DefaultLogLevel    = "info"
)

var elementIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

type Config struct {
	App     AppConfig     `toml:"app"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type AppConfig struct {
	Title       string       `toml:"title"`
	ContainerID string       `toml:"container_id"`
	InputField  string       `toml:"input_field"`
	Items       []model.Task `toml:"items"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func Default() Config {
	return Config{
		App: AppConfig{
			Title:       DefaultTitle,
			ContainerID: DefaultContainerID,
			InputField:  DefaultInputField,
			Items:       []model.Task{},
		},
		Server: ServerConfig{
			Bind: DefaultBind,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.App.Title) == "" {
		return errors.New("app title is required")
	}
	if !elementIDPattern.MatchString(c.App.ContainerID) {
		return fmt.Errorf("invalid container_id %q", c.App.ContainerID)
	}
	if !elementIDPattern.MatchString(c.App.InputField) {
		return fmt.Errorf("invalid input_field %q", c.App.InputField)
	}
	for i, item := range c.App.Items {
		if item.IsBlank() {
			return fmt.Errorf("app item %d has empty text", i)
		}
	}
	if strings.TrimSpace(c.Server.Bind) == "" {
		return errors.New("server bind address is required")
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// FromEnv applies SAMTODO_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("SAMTODO_TITLE"); ok {
		cfg.App.Title = v
	}
	if v, ok := getEnvString("SAMTODO_BIND"); ok {
		cfg.Server.Bind = v
	}
	if v, ok := getEnvString("SAMTODO_LOG_LEVEL"); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := getEnvString("SAMTODO_LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	return cfg
}

// PathFromEnv returns SAMTODO_CONFIG when set, otherwise fallback.
func PathFromEnv(fallback string) string {
	if v, ok := getEnvString("SAMTODO_CONFIG"); ok {
		return v
	}
	return fallback
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
