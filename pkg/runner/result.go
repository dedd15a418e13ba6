package runner

// FileOutcome is the result of converting one file.
type FileOutcome struct {
	// Path is the source file path that was processed.
	Path string

	// Target is the path written to when Options.Write is set.
	Target string

	// Output is the converted document in the target format.
	Output string

	// Blocks is the number of blocks the imported document held.
	Blocks int

	// Written is true when the target file was created or changed.
	Written bool

	// Skipped is true when an in-place write was abandoned because the
	// source changed between read and write.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files successfully converted.
	FilesConverted int

	// FilesWritten is the number of target files created or changed.
	FilesWritten int

	// FilesSkipped is the number of files skipped due to concurrent modification.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BlocksTotal is the total number of blocks across all converted files.
	BlocksTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesConverted++
	r.Stats.BlocksTotal += outcome.Blocks

	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
