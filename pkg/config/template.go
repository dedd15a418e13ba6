package config

// Template is the commented configuration written by `inkwell init`.
const Template = `# inkwell configuration
# See https://github.com/yaklabco/inkwell for documentation.

# Editor color theme: default, dark, light, or mono.
theme: default

# Active export format: markdown or html.
format: markdown

# Markdown flavor for the format bridge: commonmark or gfm.
# GFM adds strikethrough support.
flavor: gfm

# Maximum number of undo steps kept in memory.
history_limit: 100

# Save the session automatically when the editor quits.
autosave: true

# Override the session state file location.
# Defaults to $XDG_STATE_HOME/inkwell/session.yml.
# state_file: /path/to/session.yml

# Backups taken before files are overwritten in place.
backups:
  enabled: true
  # sidecar keeps one .inkwell.bak next to the file,
  # timestamp keeps one backup per save, none disables backups.
  mode: sidecar
`
