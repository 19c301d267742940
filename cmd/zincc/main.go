// Command zincc drives the expression typer end to end (C15): it builds
// the built-in declarations, constructs a root context via the factory
// (C10), types a small fixture program, finalizes it (C8), and reports
// diagnostics.
//
// There is no parser in this module (spec §1 "Out of scope"), so the
// "program" zincc types is not read from the file named on the command
// line — it is the fixed fixture built in fixture.go. The file argument
// and stdin-reading path exist so the CLI shape matches a real
// frontend's invocation convention even though the typer is the only
// stage actually exercised.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zinclang/zinc/internal/config"
	"github.com/zinclang/zinc/internal/typer"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("zincc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to a YAML context-flags file")
	backend := fs.String("backend", "", "target backend (js, cpp, flash, flash9, as3, swf-mark, neko)")
	noInline := fs.Bool("no-inline", false, "disable inline-method elaboration")
	noTraces := fs.Bool("no-traces", false, "replace trace() calls with null")
	debug := fs.Bool("debug", false, "re-panic instead of reporting a friendly internal error")
	help := fs.Bool("help", false, "show usage and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *debug {
		os.Setenv("DEBUG", "1")
	}
	if *help {
		printUsage()
		return 0
	}

	cliCfg := config.DefaultCLIConfig()
	if *configPath != "" {
		loaded, err := config.LoadCLIConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zincc: %v\n", err)
			return 1
		}
		cliCfg = loaded
	}
	if *backend != "" {
		cliCfg.Backend = *backend
	}
	if *noInline {
		cliCfg.NoInline = true
	}
	if *noTraces {
		cliCfg.NoTraces = true
	}

	if fs.NArg() > 0 {
		if _, err := readInputFromArgs(fs.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "zincc: %v\n", err)
			return 1
		}
	}

	opts := typer.FactoryOptions{
		Backend:  typer.Backend(cliCfg.Backend),
		NoInline: cliCfg.NoInline,
		NoTraces: cliCfg.NoTraces,
	}
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return compileFixture(opts, color)
}

// readInputFromArgs reads either the named file or, when no file
// argument is given, stdin piped in (not an interactive terminal).
func readInputFromArgs(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}
	return io.ReadAll(os.Stdin)
}

func compileFixture(opts typer.FactoryOptions, color bool) int {
	reg, main := buildFixture()

	ctx, err := typer.NewRootContext(reg, opts)
	if err != nil {
		reportError(err, color)
		return 1
	}

	if err := typeFixture(ctx, main); err != nil {
		reportError(err, color)
		return 1
	}

	if err := ctx.G.Finalize(); err != nil {
		reportError(err, color)
		return 1
	}

	reachable, modules := typer.Generate(main, nil, func(msg string) {
		reportWarning(msg, color)
	})
	for _, w := range ctx.G.Warnings {
		reportWarning(w.String(), color)
	}

	fmt.Printf("typed %d type(s) across %d module(s)\n", len(reachable), len(modules))
	for _, d := range reachable {
		fmt.Printf("  %s\n", d.Name)
	}
	return 0
}

func reportError(err error, color bool) {
	msg := err.Error()
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

func reportWarning(msg string, color bool) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[33mwarning: %s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
}

func printUsage() {
	fmt.Println(`zincc - the expression typer driver

Usage:
  zincc [options] [file]

Options:
  -config <path>   YAML file with backend/noInline/noTraces
  -backend <name>  target backend (js, cpp, flash, flash9, as3, swf-mark, neko)
  -no-inline       disable inline-method elaboration
  -no-traces       replace trace() calls with null
  -debug           re-panic on internal errors instead of reporting them
  -help            show this message`)
}
