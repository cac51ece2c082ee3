package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/turing/internal/tape"
)

type scanFlags struct {
	limit       int
	reverse     bool
	start       int
	stopAtBlank bool
}

func newScanCmd(opts *options) *cobra.Command {
	var f scanFlags

	cmd := &cobra.Command{
		Use:   "scan <input>",
		Short: "Print the symbols produced by scanning a tape",
		Long: `Builds a tape from <input> and scans it from position --start, printing one
symbol per line with its position, diagnostic form and text.

A scan never ends on its own; it stops after --limit symbols (default from
scan.limit in the config) or, with --stop-at-blank, at the first blank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				f.limit = opts.cfg.Scan.Limit
			}
			return runScan(cmd, opts, args[0], f)
		},
	}

	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of symbols to print")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "scan in reverse")
	cmd.Flags().IntVar(&f.start, "start", 0, "head position to start scanning from")
	cmd.Flags().BoolVar(&f.stopAtBlank, "stop-at-blank", false, "stop at the first blank symbol")
	return cmd
}

func runScan(cmd *cobra.Command, opts *options, input string, f scanFlags) error {
	if f.limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	t := tape.New(input)
	for f.start > t.Head() {
		t.Step(tape.Forward)
	}
	for f.start < t.Head() {
		t.Step(tape.Reverse)
	}

	dir := direction(f.reverse)
	log := opts.log.WithFields("input", input, "dir", dir)
	log.Debug("scan started", "start", f.start, "limit", f.limit)

	out := cmd.OutOrStdout()
	n := 0
	for sym := range t.Scan(dir).All() {
		if f.stopAtBlank && sym.IsBlank() {
			log.Debug("scan stopped at blank", "pos", t.Head())
			break
		}
		fmt.Fprintf(out, "%4d  %-16s %q\n", t.Head(), sym.GoString(), sym.String())
		n++
		if n == f.limit {
			break
		}
	}

	log.Debug("scan finished", "symbols", n)
	return nil
}
