package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patmatch/decision"
	"github.com/katalvlaran/patmatch/internal/config"
	"github.com/katalvlaran/patmatch/loader"
	"github.com/katalvlaran/patmatch/matrix"
	"github.com/katalvlaran/patmatch/pattern"
	"github.com/katalvlaran/patmatch/usefulness"
)

// load reads a clause table with the resolved strictness.
func (a *app) load(path string) (*pattern.Signature, *matrix.Matrix, error) {
	return loader.Load(path, loader.WithStrict(a.cfg.Strict), loader.WithLogger(a.logger("loader")))
}

// renderTree renders t in the configured layout.
func (a *app) renderTree(t decision.Tree) string {
	if a.cfg.Layout == config.LayoutLine {
		return decision.Render(t) + "\n"
	}

	return decision.RenderIndent(t)
}

func newCompileCmd(a *app) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "compile <table>",
		Short: "Compile a clause table into a decision tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			tree, err := decision.Compile(m, decision.WithLogger(a.logger("decision")))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, a.printer.Tree(a.renderTree(tree)))
			if stats {
				return printStats(out, tree)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Print node counts and depth")

	return cmd
}

func printStats(out io.Writer, t decision.Tree) error {
	s, err := decision.ComputeStats(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "nodes=%d leaves=%d fails=%d switches=%d swaps=%d depth=%d\n",
		s.Nodes, s.Leaves, s.Fails, s.Switches, s.Swaps, s.Depth)

	return nil
}

func newCheckCmd(a *app) *cobra.Command {
	var failOnIssues bool
	cmd := &cobra.Command{
		Use:   "check <table>",
		Short: "Report unreachable clauses and missing cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			rep, err := usefulness.Analyze(m,
				usefulness.WithSignature(sig),
				usefulness.WithLogger(a.logger("usefulness")))
			if err != nil {
				return err
			}
			tree, err := decision.Compile(m)
			if err != nil {
				return err
			}
			paths, err := decision.FailPaths(tree)
			if err != nil {
				return err
			}

			a.printReport(cmd.OutOrStdout(), m, rep, paths)
			if failOnIssues && (!rep.Exhaustive || len(rep.Unreachable) > 0) {
				return fmt.Errorf("%s: match has problems", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnIssues, "fail", false, "Exit non-zero when the match is not exhaustive or has unreachable clauses")

	return cmd
}

// printReport writes the diagnostics of rep.
func (a *app) printReport(out io.Writer, m *matrix.Matrix, rep *usefulness.Report, paths []decision.Path) {
	for _, i := range rep.Unreachable {
		fmt.Fprintf(out, "%s clause %d is unreachable: %s\n",
			a.printer.Warning("warning:"), i+1, m.Row(i).String())
	}
	if rep.Exhaustive {
		fmt.Fprintln(out, a.printer.OK("exhaustive"))
		return
	}
	fmt.Fprintln(out, a.printer.Error("not exhaustive"))
	if rep.Missing != nil {
		fmt.Fprintf(out, "  missing: %s\n", pattern.Format(rep.Missing))
	}
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", a.printer.Muted("fail path: "+p.String()))
	}
}

func newSpecializeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "specialize <table> <constructor>",
		Short: "Print the matrix specialized by a constructor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			c, ok := sig.Lookup(args[1])
			if !ok {
				return fmt.Errorf("%w: %s", pattern.ErrUnknownConstructor, args[1])
			}
			s, err := matrix.Specialize(m, c)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.String())
			return nil
		},
	}
}

func newDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default <table>",
		Short: "Print the default matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			d, err := matrix.Default(m)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), d.String())
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "render <table>",
		Short: "Print a clause table as a matrix, YAML or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if to == "text" {
				fmt.Fprint(out, m.String())
				return nil
			}
			f, err := loader.ParseFormat(to)
			if err != nil {
				return err
			}
			doc, err := loader.FromMatrix(sig, m)
			if err != nil {
				return err
			}
			data, err := loader.Encode(doc, f)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "text", "Output: text, yaml or toml")

	return cmd
}
