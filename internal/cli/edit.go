package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/internal/ui/editor"
	"github.com/yaklabco/inkwell/internal/ui/pretty"
	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/document"
	"github.com/yaklabco/inkwell/pkg/fsutil"
	"github.com/yaklabco/inkwell/pkg/session"
)

type editFlags struct {
	theme  string
	format string
}

func newEditCommand() *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor, either on a Markdown or HTML file or on
the persisted session.

Without a file argument the previous session is restored. With one, the
file is imported in the format its extension indicates.

Examples:
  inkwell edit                 Resume the previous session
  inkwell edit draft.md        Edit a Markdown file
  inkwell edit page.html       Edit an HTML file
  inkwell edit --theme dark    Pick the color theme`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "color theme: default, dark, light, mono")
	cmd.Flags().StringVar(&flags.format, "format", "", "export format: markdown or html")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string, flags *editFlags) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("theme") {
		cliCfg.Theme = flags.theme
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = flags.format
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%w: edit requires an interactive terminal", errUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := sessionStore(cfg)
	if err != nil {
		return err
	}

	content, format, err := loadInitialContent(ctx, cfg, store, args)
	if err != nil {
		return err
	}
	cfg.Format = format.String()

	colorEnabled := pretty.IsColorEnabled(cfg.Color, os.Stdout)
	model := editor.New(cfg, store, content, colorEnabled)

	logging.FromContext(ctx).Debug("starting editor",
		logging.FieldTheme, cfg.Theme,
		logging.FieldFormat, cfg.Format,
		logging.FieldStateFile, store.Path(),
	)

	if _, err := editor.Run(model); err != nil {
		return err
	}
	return nil
}

// loadInitialContent imports the file argument when present, otherwise the
// persisted session. An empty session yields an empty document.
func loadInitialContent(
	ctx context.Context,
	cfg *config.Config,
	store *session.Store,
	args []string,
) (document.Content, bridge.Format, error) {
	if len(args) == 1 {
		data, _, err := fsutil.ReadFile(ctx, args[0])
		if err != nil {
			return document.Content{}, "", fmt.Errorf("read %s: %w", args[0], err)
		}
		format := formatForPath(args[0], string(data))
		content, err := importContent(cfg, format, string(data))
		if err != nil {
			return document.Content{}, "", fmt.Errorf("import %s: %w", args[0], err)
		}
		return content, format, nil
	}

	st, err := store.Load(ctx)
	if err != nil {
		return document.Content{}, "", fmt.Errorf("load session: %w", err)
	}
	if st.Content == "" {
		format, ferr := bridge.ParseFormat(cfg.Format)
		if ferr != nil {
			format = bridge.FormatMarkdown
		}
		return document.NewContent(), format, nil
	}

	format, err := bridge.ParseFormat(st.ContentType)
	if err != nil {
		format = bridge.DetectFormat(st.Content)
	}
	content, err := importContent(cfg, format, st.Content)
	if err != nil {
		return document.Content{}, "", fmt.Errorf("restore session: %w", err)
	}
	return content, format, nil
}

func importContent(cfg *config.Config, format bridge.Format, input string) (document.Content, error) {
	b, err := bridge.New(format, bridge.Options{Flavor: string(cfg.Flavor)})
	if err != nil {
		return document.Content{}, err
	}
	return b.Import(input)
}

// formatForPath picks the import format from the file extension, falling
// back to content sniffing.
func formatForPath(path, content string) bridge.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return bridge.FormatHTML
	case ".md", ".markdown":
		return bridge.FormatMarkdown
	default:
		return bridge.DetectFormat(content)
	}
}
