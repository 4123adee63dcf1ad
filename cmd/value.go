package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

type valueCmd struct {
	activityFlags
	signed bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the value of an activity" }
func (*valueCmd) Usage() string {
	return `wf value -type <type> [-symbol <symbol>] [-quantity <q>] [-price <p>] [-fee <f>] [-amount <a>] [-currency <c>]
wf value -json '<activity>'

  Prints the value of the activity, rounded to 6 decimal places.

Usage Examples:
$ wf value -type BUY -symbol AAPL -quantity 10 -price 15 -fee 2 -currency USD
152 USD

`
}

func (p *valueCmd) SetFlags(f *flag.FlagSet) {
	p.activityFlags.SetFlags(f)
	f.BoolVar(&p.signed, "signed", false, "Print the value with its display sign")
}

func (p *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.isSet() {
		fmt.Fprintln(os.Stderr, "Error: -type or -json is required.")
		return subcommands.ExitUsageError
	}
	a, err := p.activity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v := wealth.ActivityValue(a)
	if p.signed && wealth.IsDisplayedNegative(a.Type) {
		v = v.Neg()
	}
	if a.Currency == "" {
		fmt.Println(v)
	} else {
		fmt.Println(v, a.Currency)
	}
	return subcommands.ExitSuccess
}
