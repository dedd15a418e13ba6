package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/inkwell/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		mode fsutil.BackupMode
		want string
	}{
		{name: "sidecar", mode: fsutil.BackupModeSidecar, want: "doc.md.inkwell.bak"},
		{name: "timestamp", mode: fsutil.BackupModeTimestamp, want: "doc.md.20260314-092653.bak"},
		{name: "none", mode: fsutil.BackupModeNone, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fsutil.BackupPath("doc.md", tt.mode, stamp); got != tt.want {
				t.Errorf("BackupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("disabled is a no-op", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		created, err := fsutil.CreateBackup(context.Background(), path, fsutil.DefaultBackupConfig())
		if err != nil || created {
			t.Errorf("CreateBackup() = %v, %v", created, err)
		}
	})

	t.Run("sidecar creates once", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		created, err := fsutil.CreateBackup(context.Background(), path, cfg)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Fatal("expected backup")
		}

		// The original content must survive a second save cycle.
		if err := os.WriteFile(path, []byte("edited"), 0644); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		created, err = fsutil.CreateBackup(context.Background(), path, cfg)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("sidecar backup must not be overwritten")
		}

		got, _ := os.ReadFile(fsutil.BackupPath(path, fsutil.BackupModeSidecar, time.Time{}))
		if string(got) != "original" {
			t.Errorf("backup content = %q", got)
		}
	})

	t.Run("timestamp creates per save", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		cfg := fsutil.BackupConfig{
			Enabled: true,
			Mode:    fsutil.BackupModeTimestamp,
			Now:     func() time.Time { return clock },
		}

		if _, err := fsutil.CreateBackup(context.Background(), path, cfg); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		clock = clock.Add(time.Minute)
		if _, err := fsutil.CreateBackup(context.Background(), path, cfg); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 3 {
			t.Errorf("dir entries = %d, want original plus two backups", len(entries))
		}
	})

	t.Run("missing original is a no-op", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		created, err := fsutil.CreateBackup(context.Background(), path, cfg)
		if err != nil || created {
			t.Errorf("CreateBackup() = %v, %v", created, err)
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	t.Run("restores sidecar", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		if _, err := fsutil.CreateBackup(context.Background(), path, cfg); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if err := os.WriteFile(path, []byte("broken"), 0644); err != nil {
			t.Fatalf("overwrite: %v", err)
		}

		restored, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if !restored {
			t.Fatal("expected restore")
		}
		got, _ := os.ReadFile(path)
		if string(got) != "original" {
			t.Errorf("restored content = %q", got)
		}
	})

	t.Run("no backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		restored, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil || restored {
			t.Errorf("RestoreBackup() = %v, %v", restored, err)
		}
	})
}

func TestBackupExists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if fsutil.BackupExists(path) {
		t.Error("no backup should exist yet")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
	if _, err := fsutil.CreateBackup(context.Background(), path, cfg); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	if !fsutil.BackupExists(path) {
		t.Error("backup should exist")
	}
}
