package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/fsutil"
	"github.com/yaklabco/inkwell/pkg/runner"
)

// ErrConversionFailed is returned when one or more files fail to convert.
var ErrConversionFailed = errors.New("conversion failed")

type convertFlags struct {
	from   string
	to     string
	output string
	write  bool
	jobs   int
	ignore []string
	flavor string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert documents between Markdown and HTML",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "markdown", "source format: markdown or html")
	cmd.Flags().StringVar(&flags.to, "to", "html", "target format: markdown or html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file for single-file conversion (- for stdout)")
	cmd.Flags().BoolVar(&flags.write, "write", false, "write converted files next to their sources")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor: commonmark, gfm")

	return cmd
}

const convertLongDescription = `Convert documents between Markdown and HTML.

Input files pass through the document model, so both directions preserve
headings, lists, quotes, code blocks, inline styles, and links.

By default, converts all source-format files in the current directory and
subdirectories and prints the results. Specify paths to convert specific
files or directories.

Examples:
  inkwell convert README.md                 Print README as HTML
  inkwell convert --from html --to markdown page.html
  inkwell convert docs/ --write             Convert docs in place, side by side
  inkwell convert README.md -o readme.html  Convert to a named file`

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("flavor") {
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	from, err := bridge.ParseFormat(flags.from)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	to, err := bridge.ParseFormat(flags.to)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.output != "" && flags.write {
		return fmt.Errorf("%w: --output and --write are mutually exclusive", errUsage)
	}
	if flags.output != "" && len(args) != 1 {
		return fmt.Errorf("%w: --output requires exactly one input file", errUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	conv, err := runner.New(from, to, string(cfg.Flavor))
	if err != nil {
		return err
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Write:        flags.write,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
	}

	logger.Debug("starting conversion",
		logging.FieldFrom, from,
		logging.FieldTo, to,
		logging.FieldWorkingDir, workDir,
		"jobs", runOpts.Jobs,
	)

	result, err := conv.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("conversion run failed"), err)
	}

	if flags.output != "" {
		if err := writeSingleOutput(ctx, cmd, result, flags.output); err != nil {
			return err
		}
	} else if !flags.write {
		for _, file := range result.Files {
			if file.Error != nil {
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), file.Output)
		}
	}

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("convert failed",
				logging.FieldPath, file.Path,
				logging.FieldError, file.Error,
			)
		}
	}

	logger.Debug("conversion complete",
		logging.FieldFilesConverted, result.Stats.FilesConverted,
		"files_written", result.Stats.FilesWritten,
		"files_skipped", result.Stats.FilesSkipped,
		"files_errored", result.Stats.FilesErrored,
		logging.FieldBlocks, result.Stats.BlocksTotal,
	)

	if result.HasFailures() {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed,
			result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}
	return nil
}

// writeSingleOutput handles the -o flag, which only applies when the run
// produced exactly one converted file.
func writeSingleOutput(ctx context.Context, cmd *cobra.Command, result *runner.Result, output string) error {
	if len(result.Files) != 1 {
		return fmt.Errorf("%w: --output requires exactly one input file, matched %d",
			errUsage, len(result.Files))
	}
	file := result.Files[0]
	if file.Error != nil {
		return file.Error
	}
	if output == "-" {
		fmt.Fprint(cmd.OutOrStdout(), file.Output)
		return nil
	}
	return fsutil.WriteAtomic(ctx, output, []byte(file.Output), 0)
}
