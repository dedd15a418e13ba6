// Package session persists the editor's last document between runs. The
// state file is YAML holding the content type and the serialized content
// under fixed keys, written atomically.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// State is the persisted session payload.
type State struct {
	// ContentType names the format Content is serialized in,
	// "markdown" or "html".
	ContentType string `yaml:"content-type"`

	// Content is the document serialized in ContentType.
	Content string `yaml:"content"`
}

// Store reads and writes the session state file.
type Store struct {
	path   string
	backup fsutil.BackupConfig
}

// NewStore creates a store over the given state file path. An empty path
// falls back to DefaultPath.
func NewStore(path string, backup fsutil.BackupConfig) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &Store{path: path, backup: backup}, nil
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the XDG state directory location for the session
// file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "inkwell", "session.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "inkwell", "session.yml"), nil
}

// Load reads the persisted state. A missing file is not an error and
// returns the zero state.
func (s *Store) Load(ctx context.Context) (State, error) {
	select {
	case <-ctx.Done():
		return State{}, fmt.Errorf("load session: %w", ctx.Err())
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read session file %s: %w", s.path, err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("parse session file %s: %w", s.path, err)
	}
	return st, nil
}

// Save writes the state atomically, creating parent directories and taking
// a backup of the previous file when configured.
func (s *Store) Save(ctx context.Context, st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if _, err := fsutil.CreateBackup(ctx, s.path, s.backup); err != nil {
		return fmt.Errorf("backup session file: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := fsutil.WriteAtomic(ctx, s.path, data, 0600); err != nil {
		return fmt.Errorf("write session file %s: %w", s.path, err)
	}
	return nil
}
