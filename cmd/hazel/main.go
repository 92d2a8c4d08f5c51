// Command hazel is Hazel's command-line entry point: with no file
// arguments it starts an interactive REPL; given one or more file
// paths it loads and evaluates each in turn, then exits; given
// -c/--eval it evaluates an inline source string and exits. Grounded
// on the teacher's cmd/cli.go driver shape and aledsdavies-opal's
// cobra.Command wiring (_examples/aledsdavies-opal/cli/main.go).
package main

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hazellang/hazel/internal/builtin"
	"github.com/hazellang/hazel/internal/driver"
)

func main() {
	var (
		evalSrc string
		noColor bool
	)

	root := &cobra.Command{
		Use:   "hazel [file...]",
		Short: "Hazel, a small Lisp-family interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			// --no-color always disables ANSI highlighting; otherwise it
			// follows whether stdout is actually a terminal (spec_full.md
			// §4.10), same default go-prompt itself assumes.
			builtin.Color = !noColor && isatty.IsTerminal(os.Stdout.Fd())

			env := builtin.NewGlobalEnv()

			if evalSrc != "" {
				driver.Eval(env, evalSrc)
				return nil
			}
			if len(args) > 0 {
				log.Printf("loading %d file(s)", len(args))
				driver.LoadFiles(env, args)
				return nil
			}
			log.Println("REPL session started")
			driver.NewREPL(env).Run()
			return nil
		},
	}

	root.Flags().StringVarP(&evalSrc, "eval", "c", "", "evaluate a source string and exit")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
