package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vitwit/agentcommerce/catalog"
	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/types"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	mustRegister("capability", validateCapabilityTag)
	mustRegister("handler", validateHandlerTag)
	mustRegister("scenario", validateScenarioTag)
	mustRegister("loglevel", validateLogLevelTag)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ParseConfig decodes a configuration document on top of the defaults and
// validates the result.
func ParseConfig(data []byte, format string) (*types.Config, error) {
	cfg := types.DefaultConfig()

	if err := decode(data, format, cfg); err != nil {
		return nil, &types.Error{
			Code:    types.ErrInvalidConfig,
			Message: fmt.Sprintf("failed to parse config: %v", err),
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, &types.Error{
			Code:    types.ErrInvalidConfig,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return cfg, nil
}

// LoadConfig reads and parses the config file at path. The format follows
// the file extension.
func LoadConfig(path string) (*types.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{
			Code:    types.ErrInvalidConfig,
			Message: fmt.Sprintf("failed to read config: %v", err),
		}
	}
	return ParseConfig(data, format)
}

// ParseSelection decodes and validates a single party selection.
func ParseSelection(data []byte, format string) (*types.SelectionConfig, error) {
	var sel types.SelectionConfig

	if err := decode(data, format, &sel); err != nil {
		return nil, &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("failed to parse selection: %v", err),
		}
	}

	if err := ValidateStruct(&sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

// ValidateStruct runs the struct tag validators and wraps failures in an
// INVALID_INPUT error.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}
	return nil
}

// FormatFromPath maps a file extension to a document format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &types.Error{
			Code:    types.ErrInvalidConfig,
			Message: fmt.Sprintf("unsupported file extension: %s", path),
		}
	}
}

func decode(data []byte, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Custom validator functions
func validateCapabilityTag(fl validator.FieldLevel) bool {
	return catalog.IsCapability(types.CapabilityID(fl.Field().String()))
}

func validateHandlerTag(fl validator.FieldLevel) bool {
	return catalog.IsHandler(types.HandlerID(fl.Field().String()))
}

func validateScenarioTag(fl validator.FieldLevel) bool {
	return scenario.IsKnown(types.ScenarioName(fl.Field().String()))
}

func validateLogLevelTag(fl validator.FieldLevel) bool {
	return logger.IsLevel(fl.Field().String())
}

// NormalizeJSON encodes v with two-space indentation. HTML characters are
// left unescaped so payload samples print as written.
func NormalizeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// CompactJSON strips insignificant whitespace. The result is the canonical
// form digests are computed over.
func CompactJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.Bytes(), nil
}
