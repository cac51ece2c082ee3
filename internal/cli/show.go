package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/turing/internal/symbol"
	"github.com/thruflo/turing/internal/tape"
)

type showFlags struct {
	steps   int
	reverse bool
	write   string
	caret   bool
	debug   bool
}

func newShowCmd(opts *options) *cobra.Command {
	var f showFlags

	cmd := &cobra.Command{
		Use:   "show <input>",
		Short: "Print a tape and its head",
		Long: `Builds a tape from <input>, moves the head --steps positions and optionally
writes a symbol there, then prints the tape with a caret under the head.`,
		Example: `  turing show abc --steps 4
  turing show abc --steps 2 --reverse --write x`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("caret") {
				f.caret = opts.cfg.Display.Caret
			}
			return runShow(cmd, opts, args[0], f)
		},
	}

	cmd.Flags().IntVar(&f.steps, "steps", 0, "number of positions to move the head")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "move the head in reverse")
	cmd.Flags().StringVar(&f.write, "write", "", "symbol to write under the head after moving")
	cmd.Flags().BoolVar(&f.caret, "caret", true, "print a caret line under the head")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "also print the diagnostic form of the tape")
	return cmd
}

func runShow(cmd *cobra.Command, opts *options, input string, f showFlags) error {
	if f.steps < 0 {
		return fmt.Errorf("--steps must not be negative")
	}

	t := tape.New(input)
	dir := direction(f.reverse)
	for range f.steps {
		t.Step(dir)
	}

	if cmd.Flags().Changed("write") {
		sym, err := symbol.Parse(f.write)
		if err != nil {
			return fmt.Errorf("invalid --write value: %w", err)
		}
		t.Write(sym)
	}

	opts.log.Debug("tape ready", "tape", t, "dir", dir)

	out := cmd.OutOrStdout()
	for _, line := range opts.styler.Head(t, f.caret) {
		fmt.Fprintln(out, line)
	}
	if f.debug {
		fmt.Fprintf(out, "%#v\n", t)
	}
	return nil
}

func direction(reverse bool) tape.Direction {
	if reverse {
		return tape.Reverse
	}
	return tape.Forward
}
