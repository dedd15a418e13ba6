package configloader

import "github.com/yaklabco/inkwell/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Nil/unset values in override do not override values in base
//
// Booleans can only be turned on through the override; flags that need to
// turn a setting off set the field on the base directly before merging.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.HistoryLimit != 0 {
		result.HistoryLimit = override.HistoryLimit
	}
	if override.StateFile != "" {
		result.StateFile = override.StateFile
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Debug {
		result.Debug = override.Debug
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
