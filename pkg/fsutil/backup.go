package fsutil

import (
	"context"
	"fmt"
	"os"
	"time"
)

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	// BackupModeSidecar stores one backup alongside the original with a
	// .inkwell.bak suffix, never overwritten once created.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeTimestamp stores a new backup per save, suffixed with the
	// save time.
	BackupModeTimestamp BackupMode = "timestamp"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is the suffix used for sidecar backup files.
const BackupSuffix = ".inkwell.bak"

// backupStamp is the timestamp layout for BackupModeTimestamp files.
const backupStamp = "20060102-150405"

// BackupConfig controls backup behavior.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode

	// Now supplies the clock for timestamped names. Nil means time.Now.
	Now func() time.Time
}

// DefaultBackupConfig returns the defaults: backups disabled, sidecar mode
// when enabled.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled: false,
		Mode:    BackupModeSidecar,
	}
}

// BackupPath returns the backup path for the given file. Timestamped paths
// change per call; now may be zero for sidecar mode.
func BackupPath(path string, mode BackupMode, now time.Time) string {
	switch mode {
	case BackupModeNone:
		return ""
	case BackupModeTimestamp:
		return path + "." + now.Format(backupStamp) + ".bak"
	default:
		return path + BackupSuffix
	}
}

// CreateBackup copies the file at path aside before an overwrite. Returns
// true when a backup was written.
//
// Sidecar backups are idempotent: an existing backup is never replaced, so
// repeated saves keep the original content. Timestamped backups are created
// on every call.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return false, nil
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	now := time.Now()
	if cfg.Now != nil {
		now = cfg.Now()
	}
	backupPath := BackupPath(path, cfg.Mode, now)
	if backupPath == "" {
		return false, nil
	}

	if cfg.Mode == BackupModeSidecar {
		if _, err := os.Stat(backupPath); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, fmt.Errorf("stat backup path: %w", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing on disk yet, nothing to preserve.
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup restores a file from its sidecar backup. Returns true if
// the file was restored, false if no backup exists.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path, BackupModeSidecar, time.Time{})

	content, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read backup: %w", err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return true, nil
}

// BackupExists reports whether a sidecar backup exists for path.
func BackupExists(path string) bool {
	_, err := os.Stat(BackupPath(path, BackupModeSidecar, time.Time{}))
	return err == nil
}
