package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/inkwell/internal/configloader"
	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// Exit codes for inkwell, following the BSD sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// errUsage marks command-line usage errors so main can map them to
// ExitInvalidUsage.
var errUsage = errors.New("usage error")

// ExitCodeForError maps an error returned from command execution to an
// exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}
	if errors.Is(err, errUsage) {
		return ExitInvalidUsage
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return ExitIOError
	}

	return ExitInternalError
}
