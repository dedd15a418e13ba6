package runner

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// Runner orchestrates multi-file conversion between document formats.
type Runner struct {
	from   bridge.Format
	to     bridge.Format
	source bridge.Bridge
	target bridge.Bridge
}

// New creates a Runner converting from one format to another. The flavor
// applies to the Markdown side of the conversion.
func New(from, to bridge.Format, flavor string) (*Runner, error) {
	source, err := bridge.New(from, bridge.Options{Flavor: flavor})
	if err != nil {
		return nil, fmt.Errorf("source bridge: %w", err)
	}
	target, err := bridge.New(to, bridge.Options{Flavor: flavor})
	if err != nil {
		return nil, fmt.Errorf("target bridge: %w", err)
	}
	return &Runner{from: from, to: to, source: source, target: target}, nil
}

// Run discovers files under opts.Paths and converts them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats, and respects context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, r.from, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect then rebuild in path order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker converts files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.convertFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertFile reads, converts, and optionally writes one file.
func (r *Runner) convertFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read: %w", err)
		return outcome
	}

	content, err := r.source.Import(string(data))
	if err != nil {
		outcome.Error = fmt.Errorf("import %s: %w", r.from, err)
		return outcome
	}
	outcome.Blocks = len(content.Blocks)

	output, err := r.target.Export(content)
	if err != nil {
		outcome.Error = fmt.Errorf("export %s: %w", r.to, err)
		return outcome
	}
	outcome.Output = output

	if !opts.Write {
		return outcome
	}

	outcome.Target = TargetPath(path, r.from, r.to)

	// Abandon the write if the source changed underneath us.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = fmt.Errorf("check source: %w", err)
		return outcome
	}
	if modified {
		outcome.Skipped = true
		return outcome
	}

	if _, err := fsutil.CreateBackup(ctx, outcome.Target, opts.Backup); err != nil {
		outcome.Error = fmt.Errorf("backup: %w", err)
		return outcome
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outcome.Target, []byte(output), info.Mode)
	if err != nil {
		outcome.Error = fmt.Errorf("write: %w", err)
		return outcome
	}
	outcome.Written = written

	return outcome
}

// TargetPath derives the output path for a source file. Same-format
// conversions rewrite in place; cross-format conversions swap the extension.
func TargetPath(path string, from, to bridge.Format) string {
	if from == to {
		return path
	}
	for _, ext := range FormatExtensions(from) {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return path[:len(path)-len(ext)] + to.Extension()
		}
	}
	return path + to.Extension()
}
