package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type classifyCmd struct {
	activityFlags
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show how an activity is classified" }
func (*classifyCmd) Usage() string {
	return `wf classify -type <type> [-symbol <symbol>] [...]
wf classify -json '<activity>'

  Evaluates every classifier on the activity and prints a report.
`
}

func (p *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.isSet() {
		fmt.Fprintln(os.Stderr, "Error: -type or -json is required.")
		return subcommands.ExitUsageError
	}
	a, err := p.activity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderClassification(renderer.NewClassification(a)))
	return subcommands.ExitSuccess
}
