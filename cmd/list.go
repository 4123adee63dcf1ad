package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	account string
	typ     string
	symbol  string
	start   string
	end     string
	head    int
	tail    int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the activities of the ledger with their value" }
func (*listCmd) Usage() string {
	return `wf list [-account <id>] [-type <type>] [-symbol <symbol>] [-s <start>] [-d <end>] [-head <n>] [-tail <n>]

  Lists activities from the ledger, sorted by date, with their value and the
  net cash flow per currency.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "account", "", "Only list the activities of this account.")
	f.StringVar(&p.typ, "type", "", "Only list the activities of this type.")
	f.StringVar(&p.symbol, "symbol", "", "Only list the activities of this symbol.")
	f.StringVar(&p.start, "s", "", "The first day to list (YYYY-MM-DD).")
	f.StringVar(&p.end, "d", "", "The last day to list (YYYY-MM-DD).")
	f.IntVar(&p.head, "head", 0, "Show only the first N activities.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N activities.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	accept, err := p.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	list, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var activities []wealth.Activity
	for _, a := range wealth.SortActivities(list) {
		if accept(a) {
			activities = append(activities, a)
		}
	}
	if p.head > 0 && len(activities) > p.head {
		activities = activities[:p.head]
	}
	if p.tail > 0 && len(activities) > p.tail {
		activities = activities[len(activities)-p.tail:]
	}

	printMarkdown(renderer.RenderActivities(renderer.NewActivities(activities)))
	return subcommands.ExitSuccess
}

// filter builds the predicate selecting the activities to list.
func (p *listCmd) filter() (func(wealth.Activity) bool, error) {
	var typ wealth.ActivityType
	if p.typ != "" {
		t, err := wealth.ParseActivityType(p.typ)
		if err != nil {
			return nil, err
		}
		typ = t
	}
	// [start, end) where end is the day after the last day.
	var start, end time.Time
	if p.start != "" {
		day, err := wealth.ParseDate(p.start)
		if err != nil {
			return nil, err
		}
		start = day
	}
	if p.end != "" {
		day, err := wealth.ParseDate(p.end)
		if err != nil {
			return nil, err
		}
		end = day.AddDate(0, 0, 1)
	}

	return func(a wealth.Activity) bool {
		switch {
		case p.account != "" && a.AccountID != p.account:
			return false
		case typ != "" && a.Type != typ:
			return false
		case p.symbol != "" && !strings.EqualFold(a.Symbol, p.symbol):
			return false
		case !start.IsZero() && a.Date.Before(start):
			return false
		case !end.IsZero() && !a.Date.Before(end):
			return false
		}
		return true
	}, nil
}
