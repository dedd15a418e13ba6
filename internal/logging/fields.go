// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTheme     = "theme"
	FieldFormat    = "format"
	FieldFlavor    = "flavor"
	FieldStateFile = "state_file"

	// Document fields.
	FieldBlocks   = "blocks"
	FieldEntities = "entities"
	FieldLanguage = "language"

	// Conversion fields.
	FieldFrom           = "from"
	FieldTo             = "to"
	FieldFilesConverted = "files_converted"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
