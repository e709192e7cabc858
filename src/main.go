package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	"github.com/eriklarko/truth-table/src/tui"
	"github.com/midbel/cli"
)

// returned by commands that already reported their failure
var errFail = errors.New("fail")

var (
	summary = "truthtable evaluates logical expressions and prints their truth tables"
	help    = `usage: truthtable [-f format] [-c config] [-v] [-batch] [command] <expr> [<preset>...]

<expr>:   The logical expression to evaluate. An expression consists of values,
          variables and operators. 0 is false and 1 is true, any sequence of
          letters is a variable. Operators, from tightest to loosest binding:
            !       negation
            &       and
            | ^     or, exclusive or
            = =>    equality, implication
          Parentheses override precedence. Examples:
            'a&b'  '(abc | !def) ^ (!abc & def)'  '(a=0) & (b=1)'
<preset>: Fixes the value of a variable. +var presets var to true (1) and
          -var to false (0).

commands:
  table  print the truth table (default)
  eval   evaluate the expression once, every variable must be preset
  dump   print the parsed expression tree
  fmt    print the expression in canonical form
  vars   list the variables of the expression

A command given no expression, or only presets, is itself the expression:
'truthtable vars +vars' prints the table of the variable vars.`
)

type options struct {
	format     string
	configPath string
	verbose    bool
	batch      bool
}

// app is what every command shares
type app struct {
	name   string
	config *config.Config
	ui     *tui.TUI
}

func main() {
	var (
		a = &app{
			name: filepath.Base(os.Args[0]),
			ui:   tui.New(),
		}
		opts options
		set  = cli.NewFlagSet(a.name)
		root = prepare(a)
	)
	set.StringVar(&opts.format, "f", "", "output format, one of table, csv or yaml")
	set.StringVar(&opts.configPath, "c", "", "path to the config file")
	set.BoolVar(&opts.verbose, "v", false, "log debug output")
	set.BoolVar(&opts.batch, "batch", false, "never ask for confirmation")

	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
		a.ui.PrintError(a.name, err.Error())
		os.Exit(1)
	}
	if len(set.Args()) == 0 {
		root.Help()
		os.Exit(2)
	}

	setupLogging(opts.verbose)
	if opts.batch {
		environment.ForceSetIsInteractive(false)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		a.ui.PrintError(a.name, err.Error())
		os.Exit(1)
	}
	a.config = cfg

	err = root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			a.ui.PrintError(a.name, err.Error())
		}
		os.Exit(1)
	}
}

func prepare(a *app) *cli.CommandTrie {
	table := tableCommand(a)

	root := cli.New()
	root.Register([]string{}, table)
	root.Register([]string{"table"}, table)
	root.Register([]string{"eval"}, evalCommand(a))
	root.Register([]string{"dump"}, dumpCommand(a))
	root.Register([]string{"fmt"}, fmtCommand(a))
	root.Register([]string{"vars"}, varsCommand(a))

	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads .env, then the config file, then the environment, and
// finally the command line flags. Later sources win.
func loadConfig(opts options) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := config.ResolvePath(opts.configPath)
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file found, using defaults", "path", path)
		cfg = config.Default()
		cfg.Path = path
	} else if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	return cfg, cfg.Validate()
}
