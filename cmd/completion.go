package cmd

import (
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the predictions of flags with a known set of values.
// Other flags expect any value.
func flagPredictors() map[string]complete.Predictor {
	var categories predict.Set
	for _, c := range budget.Categories {
		categories = append(categories, c.String(), c.Label())
	}
	return map[string]complete.Predictor{
		"type":        categories,
		"by":          predict.Set{"type", "month"},
		"o":           predict.Files("*.json"),
		"ledger-file": predict.Files("*.json"),
		"v":           predict.Nothing,
		"raw":         predict.Nothing,
	}
}

// predictFlags returns the predictors of every flag of 'set'.
func predictFlags(set *flag.FlagSet) map[string]complete.Predictor {
	known := flagPredictors()
	flags := make(map[string]complete.Predictor)
	set.VisitAll(func(f *flag.Flag) {
		if p, ok := known[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of bgt, for the global flags of
// 'global' and every subcommand.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(global),
	}
	for _, g := range groups() {
		for _, c := range g.commands {
			set := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(set)
			root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(set)}
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return root
}
