package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Day       int    `yaml:"day" validate:"min=1,max=25"`
	InputDir  string `yaml:"input_dir" validate:"required"`
	Threshold int    `yaml:"threshold" validate:"min=1"`
	Workers   int    `yaml:"workers" validate:"min=0,max=256"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Profile   string `yaml:"profile" validate:"omitempty,oneof=cpu mem"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Day:       8,
		InputDir:  "./inputs",
		Threshold: 1000,
		Workers:   0,
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path over Default. Keys missing from the file keep their defaults.
// Load does not validate; call Validate once flags have been applied.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError joins field errors into one readable message wrapped in ErrInvalid.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
