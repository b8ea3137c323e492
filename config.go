package chinacoord

import (
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config describes a high precision converter. It is read once at startup;
// a converter built from it never changes.
type Config struct {
	// Precision is the number of significant decimal digits.
	Precision uint32 `yaml:"precision" validate:"gte=16,lte=10000"`
	// BorderDetection enables the China bounding box geofence.
	BorderDetection bool `yaml:"border_detection"`
}

// DefaultConfig returns 200 digits without border detection.
func DefaultConfig() Config {
	return Config{Precision: DefaultPrecision}
}

var validate = validator.New()

// Validate checks the field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config. Missing fields keep their DefaultConfig
// value.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options returns the converter options described by c.
func (c Config) Options() []Option {
	return []Option{WithBorderDetection(c.BorderDetection)}
}

// NewDecimalConverterFromConfig validates cfg and builds a decimal converter
// from it.
func NewDecimalConverterFromConfig(cfg Config, logger *zap.Logger) (*Converter[*apd.Decimal], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewDecimalConverter(cfg.Precision, append(cfg.Options(), WithLogger(logger))...)
}
