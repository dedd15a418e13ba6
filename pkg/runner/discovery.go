package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/inkwell/pkg/bridge"
)

// Discover finds document files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file
// paths. The from format supplies the default extensions.
func Discover(ctx context.Context, from bridge.Format, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := discoverer{
		workDir: workDir,
		exts:    extensionSet(opts.effectiveExtensions(from)),
		opts:    opts,
		seen:    make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, fmt.Errorf("walk directory %s: %w", inputPath, err)
			}
		} else {
			d.add(absPath)
		}
	}

	sort.Strings(d.files)
	return d.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

type discoverer struct {
	workDir string
	exts    map[string]struct{}
	opts    Options
	seen    map[string]struct{}
	files   []string
}

// add records path if it matches the extension and glob criteria and has not
// been seen through another input path.
func (d *discoverer) add(path string) {
	if !d.matches(path) {
		return
	}
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

// walk traverses root, skipping hidden entries and excluded directories.
// Symlinked directories are only followed when FollowSymlinks is set, and
// then by walking the resolved target so cycles through the link cannot
// recurse forever.
func (d *discoverer) walk(ctx context.Context, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if path != root && hidden {
				return filepath.SkipDir
			}
			if matchesAny(d.rel(path), d.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				// Broken link.
				return nil
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if !d.opts.FollowSymlinks {
					return nil
				}
				return d.walk(ctx, target)
			}
		}

		d.add(path)
		return nil
	})
}

// matches reports whether a file path passes the extension, exclude, and
// include filters.
func (d *discoverer) matches(path string) bool {
	if _, ok := d.exts[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}

	rel := d.rel(path)
	if matchesAny(rel, d.opts.ExcludeGlobs) {
		return false
	}
	if len(d.opts.IncludeGlobs) > 0 && !matchesAny(rel, d.opts.IncludeGlobs) {
		return false
	}
	return true
}

// rel returns path relative to the working directory for glob matching.
func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a glob pattern.
// "**" matches any number of path segments, including none. Patterns without
// a slash also match against the path's base name, so "*.md" excludes
// markdown files at any depth.
func matchGlob(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "**") {
		if ok, err := filepath.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}

	return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
}

// matchSegments matches path segments against pattern segments recursively.
func matchSegments(path, pattern []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}

	if pattern[0] == "**" {
		// "**" absorbs zero or more leading path segments.
		for skip := 0; skip <= len(path); skip++ {
			if matchSegments(path[skip:], pattern[1:]) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}

	ok, err := filepath.Match(pattern[0], path[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(path[1:], pattern[1:])
}
