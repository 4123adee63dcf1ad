package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `wf fmt [-o <file>]

  Validates and formats the ledger file. This command reads all activities,
  validates them, applies available quick-fixes (like upper-casing symbols or
  giving cash activities a cash symbol), sorts them by date, and writes them
  back in a canonical JSONL format. Nothing is written if an activity is
  invalid.

Usage Examples:
# Formats the ledger file in-place.
$ wf fmt

# Writes the formatted ledger to stdout.
$ wf fmt -o -

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file, '-' for stdout. Defaults to the ledger file itself.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted := make([]wealth.Activity, 0, len(list))
	invalid := 0
	for i, a := range list {
		fixed, err := wealth.Validate(a)
		if err != nil {
			invalid++
			for _, msg := range wealth.ValidationErrors(err) {
				fmt.Fprintf(os.Stderr, "#%d %s %s: %s\n", i+1, a.Type, a.Symbol, msg)
			}
		}
		formatted = append(formatted, fixed)
	}
	if invalid > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d invalid activities, ledger not formatted.\n", invalid)
		return subcommands.ExitFailure
	}
	formatted = wealth.SortActivities(formatted)

	switch p.output {
	case "-":
		err = wealth.EncodeActivities(os.Stdout, formatted)
	case "":
		err = EncodeLedger(formatted)
	default:
		err = writeActivities(p.output, formatted)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.output != "-" {
		fmt.Fprintf(os.Stderr, "Formatted %d activities.\n", len(formatted))
	}
	return subcommands.ExitSuccess
}

func writeActivities(name string, list []wealth.Activity) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := wealth.EncodeActivities(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
