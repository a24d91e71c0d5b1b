/*
Package main implements the boggle solver server and command-line interface.

boggle finds every word a dictionary recognizes on an 8-connected letter
grid, using one goroutine per dictionary shard. It can run as a MessagePack
IPC server for editor/generic client integration, as an interactive CLI for
manual board queries, or as a timed benchmark harness over randomly
generated boards.

# Server Mode

The server loads a dictionary file in full into S shard tries, then answers
solve requests over stdin/stdout.

# CLI Mode

The CLI provides an interactive shell: type "WIDTH HEIGHT BOARD" and press
Enter to see every word found on that board.

# Benchmark Mode

-bench N solves N Mersenne-Twister-seeded random boards in a row and reports
total and average time — the same seed always produces the same boards, so
runs are comparable across machines.

# Config

Runtime configuration is managed via a config.toml file, supporting solver,
board, and CLI sections. A default configuration is created automatically if
one does not exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tilegraph/boggle/internal/cli"
	"github.com/tilegraph/boggle/internal/utils"
	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/config"
	"github.com/tilegraph/boggle/pkg/dictionary"
	"github.com/tilegraph/boggle/pkg/mt"
	"github.com/tilegraph/boggle/pkg/server"
	"github.com/tilegraph/boggle/pkg/solver"
)

const (
	Version = "0.1.0-beta"
	AppName = "boggle"
	gh      = "https://github.com/tilegraph/boggle"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server, CLI, or benchmark
// mode. main() does not implement their logic, only the flow between them.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "config.toml", "Path to config.toml file")
	dictFile := flag.String("dict", "words.txt", "Path to dictionary word list file")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI -- useful for testing and debugging")
	shards := flag.Int("shards", defaultConfig.Solver.Shards, "Number of dictionary shards / worker goroutines")
	bench := flag.Int("bench", 0, "Solve N random Mersenne-Twister-seeded boards and report timing, then exit")
	benchSeed := flag.Uint("seed", uint(defaultConfig.CLI.RandomSeed), "Seed for -bench board generation")
	benchWidth := flag.Int("width", defaultConfig.Board.DefaultWidth, "Board width for -bench")
	benchHeight := flag.Int("height", defaultConfig.Board.DefaultHeight, "Board height for -bench")

	flag.Parse()

	if *showVersion {
		printVersionBanner()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolvedConfigPath := *configFile
	resolvedDictPath := *dictFile
	if pr, err := utils.NewPathResolver(); err != nil {
		log.Debugf("path resolver unavailable, using paths as given: %v", err)
	} else {
		resolvedConfigPath = pr.ResolvePath(*configFile)
		resolvedDictPath = pr.ResolvePath(*dictFile)
	}

	appConfig, err := config.InitConfig(resolvedConfigPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		appConfig = defaultConfig
	}
	if *shards > 0 {
		appConfig.Solver.Shards = *shards
	}

	store := dictionary.NewStore(appConfig.Solver.Shards)
	if f, err := os.Open(resolvedDictPath); err == nil {
		accepted, err := store.Load(f, appConfig.Solver.Shards)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		log.Debugf("Loaded %d words (%d accepted) from %s", store.WordCount(), accepted, resolvedDictPath)
	} else {
		log.Warnf("No dictionary file at %s, running with an empty dictionary", resolvedDictPath)
	}

	switch {
	case *bench > 0:
		runBenchmark(store, *bench, uint32(*benchSeed), *benchWidth, *benchHeight)
		return

	case *cliMode:
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(store)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return

	default:
		log.Debug("spawning IPC")
		srv := server.NewServer(store, appConfig, resolvedConfigPath)
		showStartupInfo(resolvedDictPath, store.WordCount())
		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}
}

// runBenchmark solves n boards of width×height random letters, seeded from
// seed so the sequence is reproducible. Each board's solve time is logged at
// info level; a closing summary gives the total, average and fastest solve
// time in microseconds.
func runBenchmark(store *dictionary.Store, n int, seed uint32, width, height int) {
	rng := mt.New(seed)
	total := 0
	solved := 0
	var elapsedTotal, fastest time.Duration
	for i := 0; i < n; i++ {
		raw := make([]byte, width*height)
		for j := range raw {
			raw[j] = byte('A' + rng.Intn(26))
		}
		b, err := board.Prepare(raw, width, height)
		if err != nil {
			log.Errorf("bench board %d invalid: %v", i, err)
			continue
		}
		start := time.Now()
		result, err := solver.FindWords(store, b)
		elapsed := time.Since(start)
		if err != nil {
			log.Errorf("bench board %d failed: %v", i, err)
			continue
		}
		total += result.Count
		elapsedTotal += elapsed
		if solved == 0 || elapsed < fastest {
			fastest = elapsed
		}
		solved++
		log.Infof("board %d/%d: %q -> %d words, score %d, %dµs", i+1, n, string(raw), result.Count, result.Score, elapsed.Microseconds())
		solver.FreeWords(result)
	}
	var average time.Duration
	if solved > 0 {
		average = elapsedTotal / time.Duration(solved)
	}
	log.Printf("benchmark done: %d boards, %d total words found, total %dµs, average %dµs, fastest %dµs",
		n, total, elapsedTotal.Microseconds(), average.Microseconds(), fastest.Microseconds())
}

// printVersionBanner prints a styled version banner using lipgloss-themed
// log styles.
func printVersionBanner() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[boggle] finds every word on a letter grid, fast!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
	logger.Print("Find out more at", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictFile string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  boggle   ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionary: ( %s ), %d words", dictFile, wordCount)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
