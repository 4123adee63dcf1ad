package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

type validateCmd struct {
	activityFlags
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "validate an activity, or the whole ledger" }
func (*validateCmd) Usage() string {
	return `wf validate [-type <type> ... | -json '<activity>']

  Validates the activity described by the flags and prints it with quick
  fixes applied. Without activity flags, validates every activity of the
  ledger and lists the problems.
`
}

func (p *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.isSet() {
		return p.validateOne()
	}

	list, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	invalid := 0
	for i, a := range list {
		if _, err := wealth.Validate(a); err != nil {
			invalid++
			for _, msg := range wealth.ValidationErrors(err) {
				fmt.Printf("#%d %s %s: %s\n", i+1, a.Type, a.Symbol, msg)
			}
		}
	}
	if invalid > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d activities are invalid.\n", invalid, len(list))
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "All %d activities are valid.\n", len(list))
	return subcommands.ExitSuccess
}

func (p *validateCmd) validateOne() subcommands.ExitStatus {
	a, err := p.activity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fixed, verr := wealth.Validate(a)
	if err := wealth.EncodeActivity(os.Stdout, fixed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if verr != nil {
		for _, msg := range wealth.ValidationErrors(verr) {
			fmt.Fprintln(os.Stderr, msg)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
