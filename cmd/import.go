package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/importer"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type importCmd struct {
	mapping string
	paths   string
	format  string
	partial bool
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import activities from a broker CSV or JSON export" }
func (*importCmd) Usage() string {
	return `wf import [-mapping <file>] [-paths <file>] [-format csv|json] [-partial] [-dry-run] <export>

  Reads a broker export, validates every activity and appends them to the
  ledger. When some rows are invalid nothing is written, unless -partial is
  set, in which case the valid rows are written.

  The mapping file describes the export columns, see 'wf topic import'.

Usage Examples:
$ wf import -mapping broker.json export.csv

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.mapping, "mapping", "", "JSON file describing the export columns and labels")
	f.StringVar(&p.paths, "paths", "", "JSON file with the JSONPath expressions of a JSON export")
	f.StringVar(&p.format, "format", "", "Export format, csv or json. Defaults to the file extension.")
	f.BoolVar(&p.partial, "partial", false, "Write the valid activities even if some are invalid")
	f.BoolVar(&p.dryRun, "dry-run", false, "Report only, do not write the ledger")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one export file is required.")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	format := strings.ToLower(p.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(input)), ".")
	}
	if format != "csv" && format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q, use -format csv or json.\n", format)
		return subcommands.ExitUsageError
	}

	var mapping importer.Mapping
	if p.mapping != "" {
		var err error
		if mapping, err = decodeFile(p.mapping, importer.DecodeMapping); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	file, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	im := importer.New(mapping, logger())
	var result *importer.Result
	switch format {
	case "csv":
		result, err = im.ImportCSV(file)
	case "json":
		var paths importer.JSONPaths
		if p.paths != "" {
			paths, err = decodeFile(p.paths, importer.DecodeJSONPaths)
			if err != nil {
				break
			}
		}
		result, err = im.ImportJSON(file, paths)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderImport(renderer.NewImport(result)))

	summary := result.Summary()
	if summary.Invalid > 0 && !p.partial {
		fmt.Fprintf(os.Stderr, "%d invalid rows, nothing written. Fix them or use -partial.\n", summary.Invalid)
		return subcommands.ExitFailure
	}
	if p.dryRun {
		return subcommands.ExitSuccess
	}
	if err := AppendLedger(wealth.SortActivities(result.Valid())); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Appended %d activities to %s\n", summary.Valid, *ledgerFile)
	return subcommands.ExitSuccess
}

// decodeFile opens name and decodes it with decode.
func decodeFile[T any](name string, decode func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(name)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
