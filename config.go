package curvedit

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configurations which cannot be used.
var ErrInvalidConfig = errors.New("invalid editor configuration")

// Defaults for an editor configuration.
const (
	DefaultHandleRadius  = 4.0
	DefaultQuadraticLift = 50.0
	DefaultPrecision     = 2
	maxPrecision         = 8
)

// Config holds the settings of an editor session.
type Config struct {
	Curve         string  `yaml:"curve"`
	HandleRadius  float64 `yaml:"handle_radius"`
	QuadraticLift float64 `yaml:"quadratic_lift"`
	Precision     int     `yaml:"precision"`
	Canvas        Canvas  `yaml:"canvas"`
}

// Canvas is the size of the interaction surface. A zero size means the
// canvas is unbounded.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// IsBounded is a predicate: has the canvas an extent?
func (c Canvas) IsBounded() bool {
	return c.Width > 0 && c.Height > 0
}

// DefaultConfig returns a configuration for quadratic curves on an
// unbounded canvas.
func DefaultConfig() Config {
	return Config{
		Curve:         Quadratic.String(),
		HandleRadius:  DefaultHandleRadius,
		QuadraticLift: DefaultQuadraticLift,
		Precision:     DefaultPrecision,
	}
}

// LoadConfig reads a YAML configuration. Keys missing from the input keep
// their default values; unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	conf := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("cannot decode configuration: %v", err)
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		tracer().Errorf("rejected configuration: %v", err)
		return Config{}, err
	}
	return conf, nil
}

// Validate checks the configuration values.
func (conf Config) Validate() error {
	if _, err := ParseCurveType(conf.Curve); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if conf.HandleRadius <= 0 {
		return fmt.Errorf("%w: handle radius must be positive, is %g", ErrInvalidConfig, conf.HandleRadius)
	}
	if conf.Precision < 0 || conf.Precision > maxPrecision {
		return fmt.Errorf("%w: precision must be within 0..%d, is %d", ErrInvalidConfig,
			maxPrecision, conf.Precision)
	}
	if conf.Canvas.Width < 0 || conf.Canvas.Height < 0 {
		return fmt.Errorf("%w: negative canvas size %gx%g", ErrInvalidConfig,
			conf.Canvas.Width, conf.Canvas.Height)
	}
	return nil
}

// CurveType returns the configured curve type, Quadratic if the name is not
// recognized.
func (conf Config) CurveType() CurveType {
	ct, err := ParseCurveType(conf.Curve)
	if err != nil {
		return Quadratic
	}
	return ct
}
