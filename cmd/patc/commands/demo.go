package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patmatch/builder"
	"github.com/katalvlaran/patmatch/decision"
	"github.com/katalvlaran/patmatch/usefulness"
)

// demoFixtures maps fixture names to their constructors, sized by n.
var demoFixtures = map[string]func(n int) []builder.Fixture{
	"listsplit": func(int) []builder.Fixture { return []builder.Fixture{builder.ListSplit()} },
	"truth":     func(n int) []builder.Fixture { return []builder.Fixture{builder.TruthTable(n)} },
	"enum":      func(n int) []builder.Fixture { return []builder.Fixture{builder.Enum(n)} },
	"orchain":   func(n int) []builder.Fixture { return []builder.Fixture{builder.OrChain(n)} },
	"lists":     func(n int) []builder.Fixture { return []builder.Fixture{builder.ListPrefixes(n)} },
	"random":    func(n int) []builder.Fixture { return []builder.Fixture{builder.RandomTable(n, 3)} },
}

func demoNames() []string {
	names := make([]string, 0, len(demoFixtures))
	for k := range demoFixtures {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		n    int
		open int
		seed int64
	)
	cmd := &cobra.Command{
		Use:       "demo [fixture]",
		Short:     "Compile and check a built-in clause table",
		Long:      "Compile and check a built-in clause table. Fixtures: " + strings.Join(demoNames(), ", ") + ".",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "listsplit"
			if len(args) == 1 {
				name = args[0]
			}
			mk, ok := demoFixtures[name]
			if !ok {
				return fmt.Errorf("unknown fixture %q (want one of %s)", name, strings.Join(demoNames(), ", "))
			}
			if open < 0 {
				return fmt.Errorf("--open must be >= 0, got %d", open)
			}
			sig, m, err := builder.BuildMatrix([]builder.BuilderOption{
				builder.WithOpenTypes(open),
				builder.WithSeed(seed),
			}, mk(n)...)
			if err != nil {
				return err
			}

			tree, err := decision.Compile(m, decision.WithLogger(a.logger("decision")))
			if err != nil {
				return err
			}
			rep, err := usefulness.Analyze(m, usefulness.WithSignature(sig))
			if err != nil {
				return err
			}
			paths, err := decision.FailPaths(tree)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.printer.Title("clauses"))
			fmt.Fprint(out, m.String())
			fmt.Fprintln(out, a.printer.Title("decision tree"))
			fmt.Fprint(out, a.printer.Tree(a.renderTree(tree)))
			fmt.Fprintln(out, a.printer.Title("analysis"))
			a.printReport(out, m, rep, paths)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 3, "Fixture size (columns, variants, depth or rows)")
	cmd.Flags().IntVar(&open, "open", 0, "Extra variants added to every declared type")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for the random fixture")

	return cmd
}
