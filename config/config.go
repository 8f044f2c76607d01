// Package config defines the solver's run-time options and the flag
// parsing that produces them, in the style of the teacher pack's game
// server configuration (la2go's internal/config): a flat struct, a
// default constructor, and a thin CLI layer on top of the stdlib flag
// package rather than a third-party flag library.
package config

import (
	"flag"
	"runtime"
	"strings"

	"github.com/katalvlaran/geotsp/errs"
)

// RunConfig holds every knob the CLI and the pipeline need for a single
// solve (spec.md §3 supporting types; spec.md §6/§4.12 CLI surface).
type RunConfig struct {
	// InputPath is the TSPLIB file to read (positional argument).
	InputPath string

	// NoLog silences structured logging (spec.md §4.12: "--no-log").
	NoLog bool

	// NoUncross, NoOropt, NoRelp independently switch off a single
	// post-processing pass (spec.md §4.12: per-pass disable flags).
	NoUncross bool
	NoOropt   bool
	NoRelp    bool

	// NoPost disables every post-processing pass at once, equivalent to
	// setting NoUncross, NoOropt, and NoRelp together.
	NoPost bool

	// Workers sizes the process-wide worker pool. <= 0 means
	// runtime.GOMAXPROCS(0) (spec.md §5).
	Workers int
}

// Default returns a RunConfig with every post-processing pass enabled and
// logging on.
func Default() RunConfig {
	return RunConfig{Workers: runtime.GOMAXPROCS(0)}
}

// Parse parses args (excluding the program name) into a RunConfig, built
// on the stdlib flag package the way the teacher pack's CLI entrypoints
// do (e.g. la2go's cmd/htmlconvert). Returns errs.ErrInputMissing if no
// positional input path is supplied.
func Parse(args []string) (RunConfig, error) {
	cfg := Default()

	fs := flag.NewFlagSet("geotsp", flag.ContinueOnError)
	fs.BoolVar(&cfg.NoLog, "no-log", false, "disable structured logging")
	fs.BoolVar(&cfg.NoUncross, "no-uncross", false, "disable the 2-opt uncrosser pass")
	fs.BoolVar(&cfg.NoOropt, "no-oropt", false, "disable the Or-opt relocation pass")
	fs.BoolVar(&cfg.NoRelp, "no-relp", false, "disable the RELP reluctant-point pass")
	fs.BoolVar(&cfg.NoPost, "no-post", false, "disable all post-processing passes")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size (default: GOMAXPROCS)")

	// flag.FlagSet.Parse stops at the first non-flag token, so a
	// flags-after-path invocation ("geotsp input.tsp --no-log") would
	// otherwise leave --no-log unparsed in fs.Args(). spec.md §6 requires
	// the positional input path to work regardless of where it falls
	// relative to the flags, so reorder flags-then-positionals before
	// handing args to fs.Parse.
	if err := fs.Parse(reorderFlagsFirst(fs, args)); err != nil {
		return RunConfig{}, err
	}

	if fs.NArg() < 1 {
		return RunConfig{}, errs.ErrInputMissing
	}
	cfg.InputPath = fs.Arg(0)

	if cfg.NoPost {
		cfg.NoUncross = true
		cfg.NoOropt = true
		cfg.NoRelp = true
	}

	return cfg, nil
}

// reorderFlagsFirst partitions args into flag tokens (and the values they
// consume) followed by every positional token, preserving the relative
// order within each group. fs is consulted to tell bool flags (which
// never consume a following token) apart from value flags (which do,
// unless the value is already attached via "-name=value").
func reorderFlagsFirst(fs *flag.FlagSet, args []string) []string {
	var flags, positionals []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			positionals = append(positionals, a)
			continue
		}

		flags = append(flags, a)
		name := strings.TrimLeft(a, "-")
		if strings.ContainsRune(name, '=') {
			continue // value already attached, nothing more to consume
		}
		if f := fs.Lookup(name); f != nil {
			if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); !ok || !bf.IsBoolFlag() {
				if i+1 < len(args) {
					i++
					flags = append(flags, args[i])
				}
			}
		}
	}

	return append(flags, positionals...)
}
