package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/inkwell/pkg/config"
)

// envVarPrefix is the prefix for all inkwell environment variables.
const envVarPrefix = "INKWELL_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"THEME":           {field: "theme", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
	"FLAVOR":          {field: "flavor", typ: envTypeString},
	"HISTORY_LIMIT":   {field: "history_limit", typ: envTypeInt},
	"AUTOSAVE":        {field: "autosave", typ: envTypeBool},
	"STATE_FILE":      {field: "state_file", typ: envTypeString},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with INKWELL_ (e.g., INKWELL_THEME).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "theme":
		cfg.Theme = value
	case "format":
		cfg.Format = value
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "state_file":
		cfg.StateFile = value
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "autosave":
		cfg.Autosave = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "history_limit":
		cfg.HistoryLimit = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"INKWELL_THEME":           "Editor color theme: default, dark, light, or mono",
		"INKWELL_FORMAT":          "Export format: markdown or html",
		"INKWELL_FLAVOR":          "Markdown flavor: commonmark or gfm",
		"INKWELL_HISTORY_LIMIT":   "Maximum number of undo steps kept in memory",
		"INKWELL_AUTOSAVE":        "Save the session on quit: true or false",
		"INKWELL_STATE_FILE":      "Session state file location",
		"INKWELL_BACKUPS_ENABLED": "Enable backups before overwriting files: true or false",
		"INKWELL_BACKUPS_MODE":    "Backup mode: sidecar, timestamp, or none",
	}
}
