package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/turing/internal/nodupes"
	"github.com/thruflo/turing/internal/tape"
)

func newNoDupesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "nodupes [input...]",
		Short: "Check inputs for repeated symbols",
		Long: `Runs the duplicate-symbol check on each input, or on the cases listed in
the config file when no input is given. For each input it prints the tape
and whether every symbol is distinct, naming the first repeat if not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := args
			if len(cases) == 0 {
				cases = opts.cfg.Cases
			}
			return runNoDupes(cmd, opts, cases)
		},
	}
}

func runNoDupes(cmd *cobra.Command, opts *options, cases []string) error {
	out := cmd.OutOrStdout()
	st := opts.styler

	for i, input := range cases {
		t := tape.New(input)
		res := nodupes.Check(t)
		opts.log.Debug("case checked", "case", i, "input", input, "unique", res.Unique, "pos", res.Position)

		verdict := st.Verdict(res.Unique, fmt.Sprint(res.Unique))
		if !res.Unique {
			verdict += fmt.Sprintf(" (found duplicate '%s')", t.Read())
		}
		fmt.Fprintf(out, "%s %s\n", st.Label("String:"), input)
		fmt.Fprintf(out, "%s %s\n", st.Label("No Dupes?:"), verdict)
	}
	return nil
}
