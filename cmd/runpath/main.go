// Command runpath reads a digit grid and prints the minimal cost of crossing
// it from the top-left to the bottom-right cell under run-length rules.
//
// Usage:
//
//	runpath [options] [input-file]
//
// With no input file the grid is read from standard input. Exit status is 0
// on success, 1 on malformed input or configuration, 2 on bad usage and 3
// when a goal is unreachable under the selected rules.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/runpath/config"
	"github.com/katalvlaran/runpath/grid"
	"github.com/katalvlaran/runpath/render"
	"github.com/katalvlaran/runpath/runpath"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnreachable = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flags holds the raw command line. Negative run bounds mean "not given".
type flags struct {
	configPath string
	mode       string
	minRun     int
	maxRun     int
	render     bool
	color      bool
	format     string
	logLevel   string
	input      string
}

func parseFlags(args []string, stderr io.Writer) (*flags, *flag.FlagSet, error) {
	var f flags
	fs := flag.NewFlagSet("runpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to a TOML or YAML configuration file")
	fs.StringVar(&f.configPath, "c", "", "Path to a configuration file (shorthand)")
	fs.StringVar(&f.mode, "mode", "", "Rule preset: standard, ultra or both")
	fs.IntVar(&f.minRun, "min-run", -1, "Override the preset's minimum run before a turn")
	fs.IntVar(&f.maxRun, "max-run", -1, "Override the preset's maximum straight run")
	fs.BoolVar(&f.render, "render", false, "Draw the route over the grid")
	fs.BoolVar(&f.render, "r", false, "Draw the route over the grid (shorthand)")
	fs.BoolVar(&f.color, "color", false, "Use ANSI colors when drawing")
	fs.StringVar(&f.format, "format", "", "Output format: text or json")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "runpath - run-length constrained minimum-cost grid routes\n\n")
		fmt.Fprintf(stderr, "Usage: runpath [options] [input-file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  runpath map.txt                 Standard rules\n")
		fmt.Fprintf(stderr, "  runpath -mode both -r map.txt   Both presets, with the route drawn\n")
		fmt.Fprintf(stderr, "  runpath -max-run 5 < map.txt    Custom straight-run limit\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		f.input = fs.Arg(0)
	default:
		fs.Usage()
		return nil, nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	return &f, fs, nil
}

// resolveConfig loads the config file, if any, and lays explicitly given
// flags over it.
func resolveConfig(f *flags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.Mode = f.mode
		case "min-run":
			v := f.minRun
			cfg.MinRun = &v
		case "max-run":
			v := f.maxRun
			cfg.MaxRun = &v
		case "render", "r":
			cfg.Render = f.render
		case "color":
			cfg.Color = f.color
		case "format":
			cfg.Format = f.format
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log, nil
}

func readGrid(path string, stdin io.Reader) (*grid.Grid, error) {
	if path == "" {
		return grid.ParseReader(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return grid.ParseReader(fh)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	log, err := newLogger(f.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid log level %q\n", f.logLevel)
		return exitUsage
	}

	cfg, err := resolveConfig(f, fs)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return exitFailure
	}

	g, err := readGrid(f.input, stdin)
	if err != nil {
		log.WithError(err).Error("cannot read grid")
		return exitFailure
	}
	rows, cols := g.Dimensions()
	log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("grid parsed")

	modes, _ := cfg.Modes()
	queries := make([]runpath.Query, len(modes))
	rules := make([]runpath.Rules, len(modes))
	for i, m := range modes {
		opts, err := cfg.Options(m)
		if err != nil {
			log.WithError(err).WithField("mode", m).Error("invalid rules")
			return exitFailure
		}
		rules[i], _ = cfg.Rules(m)
		queries[i] = runpath.Query{Name: m.String(), Options: opts}
	}

	began := time.Now()
	out := runpath.SolveBatch(g, queries)
	log.WithField("elapsed", time.Since(began)).Debug("search finished")

	code := exitOK
	for i, o := range out {
		entry := log.WithFields(logrus.Fields{"mode": o.Query.Name, "rules": rules[i]})
		switch {
		case o.Err == nil:
			entry.WithFields(logrus.Fields{
				"cost":     o.Result.Cost,
				"expanded": o.Result.Expanded,
				"pushed":   o.Result.Pushed,
			}).Info("route found")
		case errors.Is(o.Err, runpath.ErrUnreachable):
			entry.WithError(o.Err).Warn("goal unreachable")
			code = exitUnreachable
		default:
			entry.WithError(o.Err).Error("search failed")
			return exitFailure
		}
	}

	var werr error
	if cfg.Format == config.OutputJSON {
		werr = writeJSON(stdout, g, cfg, out, rules)
	} else {
		werr = writeText(stdout, g, cfg, out)
	}
	if werr != nil {
		log.WithError(werr).Error("cannot write output")
		return exitFailure
	}

	return code
}

// writeText prints one cost per mode: a bare integer for a single mode,
// "<mode>: <cost>" lines otherwise. A goal with no route prints as
// "unreachable". Drawings precede their cost.
func writeText(w io.Writer, g *grid.Grid, cfg *config.Config, out []runpath.Outcome) error {
	var sb strings.Builder
	for _, o := range out {
		if cfg.Render && o.Err == nil {
			var opts []render.Option
			if cfg.Color {
				opts = append(opts, render.WithColor())
			}
			if err := render.Overlay(&sb, g, o.Result.Path, opts...); err != nil {
				return err
			}
			sb.WriteByte('\n')
		}
		value := "unreachable"
		if o.Err == nil {
			value = fmt.Sprint(o.Result.Cost)
		}
		if len(out) == 1 {
			sb.WriteString(value + "\n")
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", o.Query.Name, value)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// jsonStep is the wire form of one path step.
type jsonStep struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Heading string `json:"heading"`
}

// writeJSON emits {"results":[...]} with one object per mode.
func writeJSON(w io.Writer, g *grid.Grid, cfg *config.Config, out []runpath.Outcome, rules []runpath.Rules) error {
	doc := `{"results":[]}`
	var err error
	set := func(path string, value interface{}) {
		if err == nil {
			doc, err = sjson.Set(doc, path, value)
		}
	}

	for i, o := range out {
		base := fmt.Sprintf("results.%d.", i)
		set(base+"mode", o.Query.Name)
		set(base+"min_run", rules[i].MinRun)
		set(base+"max_run", rules[i].MaxRun)
		set(base+"reachable", o.Err == nil)
		if o.Err != nil {
			set(base+"error", o.Err.Error())
			continue
		}
		set(base+"cost", o.Result.Cost)
		steps := make([]jsonStep, len(o.Result.Path))
		for j, s := range o.Result.Path {
			steps[j] = jsonStep{Row: s.Pos.Row, Col: s.Pos.Col, Heading: s.Heading.String()}
		}
		set(base+"path", steps)
		if cfg.Render {
			drawing, rerr := render.String(g, o.Result.Path)
			if rerr != nil {
				return rerr
			}
			set(base+"render", drawing)
		}
	}
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = io.WriteString(w, doc+"\n")

	return err
}
