// Package config loads optional flightgraph configuration files.
//
// A config file supplies defaults for the render command. TOML and YAML are
// supported and chosen by file extension:
//
//	# flightgraph.toml
//	airports   = 25
//	flights    = 2000
//	type       = "nodelink"
//	dimensions = 2
//	seed       = 7
//
// Every field is optional; unset fields leave the pipeline defaults alone.
// Values are validated on load, and unknown keys are rejected.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config mirrors the render command's flags. Pointer fields distinguish
// "unset" from zero values.
type Config struct {
	Airports    *int     `toml:"airports" yaml:"airports" validate:"omitempty,min=2"`
	AirportIDs  []string `toml:"airport_ids" yaml:"airport_ids" validate:"omitempty,min=2,unique,dive,required"`
	Flights     *int     `toml:"flights" yaml:"flights" validate:"omitempty,min=0"`
	FlightsFile string   `toml:"flights_file" yaml:"flights_file"`
	SampleSeed  *uint64  `toml:"sample_seed" yaml:"sample_seed"`

	VizType     string   `toml:"type" yaml:"type" validate:"omitempty,oneof=nodelink scene"`
	Dimensions  *int     `toml:"dimensions" yaml:"dimensions" validate:"omitempty,oneof=2 3"`
	Seed        *uint64  `toml:"seed" yaml:"seed"`
	Scale       *float64 `toml:"scale" yaml:"scale" validate:"omitempty,gt=0"`
	Iterations  *int     `toml:"iterations" yaml:"iterations" validate:"omitempty,min=1"`
	RandomDepth *bool    `toml:"random_depth" yaml:"random_depth"`

	Format   string `toml:"format" yaml:"format" validate:"omitempty,oneof=svg png pdf dot json html"`
	Output   string `toml:"output" yaml:"output"`
	Detailed *bool  `toml:"detailed" yaml:"detailed"`
	Title    string `toml:"title" yaml:"title"`
	Serve    string `toml:"serve" yaml:"serve"`
}

// Load reads and validates a TOML (.toml) or YAML (.yaml, .yml) file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
}

// ParseTOML decodes and validates TOML config data.
func ParseTOML(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return &c, c.Validate()
}

// ParseYAML decodes and validates YAML config data.
func ParseYAML(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML config")
	}
	return &c, c.Validate()
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Format != "" {
		vizType := c.VizType
		if vizType == "" {
			vizType = pipeline.DefaultVizType
		}
		if err := pipeline.ValidateFormat(vizType, c.Format); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
		}
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}

	// Report the first violation in a user-friendly format.
	e := validationErrs[0]
	field, param := e.Field(), e.Param()
	switch e.Tag() {
	case "min":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be at least %s", field, param)
	case "gt":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be greater than %s", field, param)
	case "oneof":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be one of: %s", field, param)
	case "unique":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: values must be unique", field)
	case "required":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: value is required", field)
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: validation failed (%s)", field, e.Tag())
	}
}

// ApplyTo copies every set field onto opts, skipping fields whose flag
// was given explicitly. isSet reports whether a flag was set on the
// command line; it may be nil.
func (c *Config) ApplyTo(opts *pipeline.Options, isSet func(flag string) bool) {
	keep := func(flag string) bool { return isSet != nil && isSet(flag) }

	setInt := func(flag string, dst *int, v *int) {
		if v != nil && !keep(flag) {
			*dst = *v
		}
	}
	setUint := func(flag string, dst *uint64, v *uint64) {
		if v != nil && !keep(flag) {
			*dst = *v
		}
	}
	setBool := func(flag string, dst *bool, v *bool) {
		if v != nil && !keep(flag) {
			*dst = *v
		}
	}
	setString := func(flag string, dst *string, v string) {
		if v != "" && !keep(flag) {
			*dst = v
		}
	}

	setInt("airports", &opts.Airports, c.Airports)
	setInt("flights", &opts.Flights, c.Flights)
	setInt("dim", &opts.Dimensions, c.Dimensions)
	setInt("iterations", &opts.Iterations, c.Iterations)
	setUint("seed", &opts.Seed, c.Seed)
	setUint("sample-seed", &opts.SampleSeed, c.SampleSeed)
	setBool("random-depth", &opts.RandomDepth, c.RandomDepth)
	setBool("detailed", &opts.Detailed, c.Detailed)
	setString("flights-file", &opts.FlightsFile, c.FlightsFile)
	setString("type", &opts.VizType, c.VizType)
	setString("title", &opts.Title, c.Title)

	if c.Scale != nil && !keep("scale") {
		opts.Scale = *c.Scale
	}
	if len(c.AirportIDs) > 0 && !keep("airport") {
		opts.AirportIDs = append([]string(nil), c.AirportIDs...)
	}
	if c.Format != "" && !keep("format") {
		opts.Formats = []string{c.Format}
	}
}
