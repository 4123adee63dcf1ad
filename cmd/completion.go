package cmd

import (
	"flag"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the wf command line for shell completion: global
// flags, subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
		}
	}

	root.Sub["import"].Args = predict.Files("*")
	root.Sub["topic"].Args = complete.PredictFunc(func(prefix string) []string {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return nil
		}
		return append(topics, "readme")
	})
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		predictors[f.Name] = flagPredictor(f)
	})
	return predictors
}

// flagPredictor guesses the values of a flag from its name.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "type":
		var types predict.Set
		for _, t := range wealth.ActivityTypes() {
			types = append(types, t.String())
		}
		return types
	case "format":
		return predict.Set{"csv", "json"}
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case "mapping", "paths":
		return predict.Files("*.json")
	case "ledger-file", "o":
		return predict.Files("*.jsonl")
	}
	return predict.Something
}
