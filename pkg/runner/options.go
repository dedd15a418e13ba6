// Package runner provides multi-file conversion orchestration.
package runner

import (
	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// Options controls multi-file conversion behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered input documents. Defaults to the source format's extensions.
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Write converts files in place instead of collecting output.
	Write bool

	// Backup configures backups taken before in-place writes.
	Backup fsutil.BackupConfig
}

// FormatExtensions returns the file extensions associated with a format.
func FormatExtensions(f bridge.Format) []string {
	if f == bridge.FormatHTML {
		return []string{".html", ".htm"}
	}
	return []string{".md", ".markdown"}
}

// effectiveExtensions returns the extensions to use, defaulting to the
// source format's extensions.
func (o Options) effectiveExtensions(from bridge.Format) []string {
	if len(o.Extensions) == 0 {
		return FormatExtensions(from)
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
