// Command wf values, classifies and imports account activities.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wealth/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Completes and exits when invoked by the shell for completion.
	cmd.Completion().Complete("wf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands are looked up as wf-<name> extensions.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
