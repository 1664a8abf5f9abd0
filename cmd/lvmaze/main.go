package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/solver"
)

// Version is the lvmaze release.
const Version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("lvmaze", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lvmaze [options] [maze-file]\n\n")
		fmt.Fprintf(stderr, "lvmaze solves a text maze ('#' wall, '.' open, 'S' start, 'E' end)\n")
		fmt.Fprintf(stderr, "with depth-first and/or breadth-first search and prints the solution.\n")
		fmt.Fprintf(stderr, "Reads stdin when no file (or \"-\") is given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %s, %s, %s (also read from --env file)\n",
			config.EnvAlgorithm, config.EnvLogLevel, config.EnvPlain)
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lvmaze maze.txt           # DFS then BFS\n")
		fmt.Fprintf(stderr, "  lvmaze -a bfs -x maze.txt # BFS, show explored cells\n")
		fmt.Fprintf(stderr, "  cat maze.txt | lvmaze -p  # plain output from stdin\n")
	}

	algoFlag := flags.StringP("algorithm", "a", "", "Search algorithm: dfs, bfs or both (default both)")
	envFlag := flags.StringP("env", "e", "", "Load defaults from this .env file (default ./.env)")
	plainFlag := flags.BoolP("plain", "p", false, "Disable colors and styling")
	exploredFlag := flags.BoolP("explored", "x", false, "Mark explored cells that are not on the path")
	checkFlag := flags.BoolP("check", "c", false, "Report open regions and reachability before solving")
	levelFlag := flags.StringP("log-level", "l", "", "Log level: panic, fatal, error, warn, info, debug, trace")
	versionFlag := flags.BoolP("version", "V", false, "Print version information")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *helpFlag {
		flags.Usage()
		return 0
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "lvmaze version %s\n", Version)
		return 0
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var envFiles []string
	if *envFlag != "" {
		envFiles = append(envFiles, *envFlag)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		log.WithError(err).Error("load configuration")
		return 2
	}
	if flags.Lookup("algorithm").Changed {
		cfg.Algorithm = strings.ToLower(*algoFlag)
	}
	if flags.Lookup("plain").Changed {
		cfg.Plain = *plainFlag
	}
	if flags.Lookup("log-level").Changed {
		lvl, err := logrus.ParseLevel(*levelFlag)
		if err != nil {
			log.WithError(err).Error("parse --log-level")
			return 2
		}
		cfg.LogLevel = lvl
	}
	log.SetLevel(cfg.LogLevel)

	strategies, err := strategiesFor(cfg.Algorithm)
	if err != nil {
		log.WithError(err).Error("select algorithm")
		return 2
	}

	name := "-"
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	}
	entry := log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "maze": name})

	g, err := readMaze(name, stdin)
	if err != nil {
		entry.WithError(err).Error("read maze")
		return 1
	}
	entry.WithFields(logrus.Fields{"rows": g.Rows, "cols": g.Cols}).Debug("maze loaded")

	if *checkFlag {
		reachable := g.Connected(g.StartCell().Position, g.EndCell().Position)
		entry.WithFields(logrus.Fields{
			"regions":   len(g.Regions()),
			"reachable": reachable,
		}).Info("maze check")
	}

	searcher, err := solver.NewSearcher(g, solver.WithOnExplore(func(c grid.Cell) error {
		entry.WithField("cell", c.Position.String()).Trace("explore")
		return nil
	}))
	if err != nil {
		entry.WithError(err).Error("prepare search")
		return 1
	}

	renderOpts := []render.Option{render.WithRenderer(lipgloss.NewRenderer(stdout))}
	if cfg.Plain {
		renderOpts = append(renderOpts, render.WithPlain())
	}
	if *exploredFlag {
		renderOpts = append(renderOpts, render.WithExplored(searcher.Explored))
	}

	code := 0
	for i, st := range strategies {
		if i > 0 {
			searcher.Reset()
			fmt.Fprintln(stdout)
		}
		fields := entry.WithField("algorithm", st.String())

		res, err := searcher.Solve(st)
		if err != nil {
			if errors.Is(err, solver.ErrUnsolvable) {
				fields.WithField("explored", len(searcher.Order())).Warn("no path from start to end")
			} else {
				fields.WithError(err).Error("solve")
			}
			code = 1
			continue
		}
		fields.WithFields(logrus.Fields{
			"path_len": len(res.Path),
			"steps":    res.Steps(),
			"explored": len(res.Order),
		}).Info("solved")

		fmt.Fprint(stdout, render.Render(g, res.Path, renderOpts...))
	}

	return code
}

// strategiesFor maps a configured algorithm name to the searches to run.
func strategiesFor(name string) ([]solver.Strategy, error) {
	if name == config.AlgorithmBoth {
		return []solver.Strategy{solver.DepthFirst, solver.BreadthFirst}, nil
	}
	st, err := solver.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []solver.Strategy{st}, nil
}

// readMaze parses the maze in file name, or stdin for "-".
func readMaze(name string, stdin io.Reader) (*grid.Grid, error) {
	if name == "-" {
		return grid.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Parse(f)
}
