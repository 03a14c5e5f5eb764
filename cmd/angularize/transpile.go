package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/angularize/pkg/transpiler"
)

var (
	// ErrNoInputFiles indicates the command was invoked without inputs.
	ErrNoInputFiles = errors.New("no input files given")
	// ErrTranspileFailed indicates at least one input could not be converted.
	ErrTranspileFailed = errors.New("transpilation failed")
	// ErrCheckMismatch indicates --check found stale generated artifacts.
	ErrCheckMismatch = errors.New("generated artifacts out of date")
)

const artifactFileMode = 0o644

func transpileCmd() *cobra.Command {
	var outDir string

	var check, noSummary bool

	cmd := &cobra.Command{
		Use:   "transpile <files...>",
		Short: "Convert React components into Angular components",
		Long: `Convert React functional components into Angular components.

Each input produces <Name>.component.ts, <Name>.component.html, and
<Name>.component.css in the output directory. Inputs with a .json extension
are treated as pre-parsed syntax trees. A failing input does not stop the
rest of the batch.

Examples:
  angularize transpile Counter.jsx
  angularize transpile src/components/*.tsx -o ./angular-output
  angularize transpile --check Counter.jsx    # diff against existing output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranspile(args, outDir, check, noSummary, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&check, "check", false, "diff against existing artifacts instead of writing")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "suppress the summary table")

	return cmd
}

// fileResult is one row of the batch outcome.
type fileResult struct {
	input     string
	component string
	written   int
	size      uint64
	err       error
	stale     bool
}

func runTranspile(files []string, outDir string, check, noSummary bool, out io.Writer) error {
	if len(files) == 0 {
		return ErrNoInputFiles
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	logger := cfg.Logger(os.Stderr)
	tp := transpiler.New(logger)

	if !check {
		mkdirErr := os.MkdirAll(outDir, 0o755)
		if mkdirErr != nil {
			return fmt.Errorf("create output dir: %w", mkdirErr)
		}
	}

	results := make([]fileResult, 0, len(files))

	for _, file := range files {
		result := transpileOne(tp, file, outDir, check, cfg.Output.Overwrite)
		results = append(results, result)

		if result.err != nil {
			logger.Error("transpile failed", "input", file, "error", result.err)
		}
	}

	if !noSummary {
		printSummary(out, results, check)
	}

	return batchOutcome(results, check)
}

func transpileOne(tp *transpiler.Transpiler, file, outDir string, check, overwrite bool) fileResult {
	result := fileResult{input: file, component: transpiler.ComponentName(file)}

	source, err := os.ReadFile(file)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", file, err)

		return result
	}

	artifacts, err := tp.Transpile(context.Background(), file, source)
	if err != nil {
		result.err = err

		return result
	}

	outputs := []struct {
		path    string
		content string
	}{
		{filepath.Join(outDir, artifacts.ComponentName+".component.ts"), artifacts.TypeScript},
		{filepath.Join(outDir, artifacts.ComponentName+".component.html"), artifacts.HTML},
		{filepath.Join(outDir, artifacts.ComponentName+".component.css"), artifacts.CSS},
	}

	for _, output := range outputs {
		path, content := output.path, output.content
		if check {
			stale, checkErr := diffArtifact(path, content)
			if checkErr != nil {
				result.err = checkErr

				return result
			}

			if stale {
				result.stale = true
			}

			continue
		}

		if !overwrite {
			if _, statErr := os.Stat(path); statErr == nil {
				continue
			}
		}

		writeErr := os.WriteFile(path, []byte(content), artifactFileMode)
		if writeErr != nil {
			result.err = fmt.Errorf("write %s: %w", path, writeErr)

			return result
		}

		result.written++
		result.size += uint64(len(content))
	}

	return result
}

// diffArtifact compares generated content against the file on disk and
// prints a unified-ish diff for mismatches. A missing file counts as stale.
func diffArtifact(path, generated string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			color.New(color.FgYellow).Fprintf(os.Stdout, "missing: %s\n", path)

			return true, nil
		}

		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if string(existing) == generated {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(existing), generated, false)
	dmp.DiffCleanupSemantic(diffs)

	color.New(color.FgYellow).Fprintf(os.Stdout, "stale: %s\n", path)
	fmt.Fprintln(os.Stdout, dmp.DiffPrettyText(diffs))

	return true, nil
}

func printSummary(out io.Writer, results []fileResult, check bool) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Component", "Input", "Status", "Files", "Size"})

	var failed int

	for _, r := range results {
		status := statusLabel(r, check)
		if r.err != nil {
			failed++
		}

		tbl.AppendRow(table.Row{
			r.component,
			r.input,
			status,
			r.written,
			humanize.Bytes(r.size),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d components", len(results)), "", fmt.Sprintf("%d failed", failed), "", ""})
	tbl.Render()
}

func statusLabel(r fileResult, check bool) string {
	switch {
	case r.err != nil:
		return color.New(color.FgRed).Sprint("error")
	case check && r.stale:
		return color.New(color.FgYellow).Sprint("stale")
	case check:
		return color.New(color.FgGreen).Sprint("up to date")
	default:
		return color.New(color.FgGreen).Sprint("ok")
	}
}

func batchOutcome(results []fileResult, check bool) error {
	var failed, stale int

	for _, r := range results {
		if r.err != nil {
			failed++
		}

		if r.stale {
			stale++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrTranspileFailed, failed, len(results))
	}

	if check && stale > 0 {
		return fmt.Errorf("%w: %d components", ErrCheckMismatch, stale)
	}

	return nil
}
