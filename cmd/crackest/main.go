// Copyright 2026 The Crackest Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the password strength server and CLI application.

Crackest estimates how guessable a password is by decomposing it into
the patterns a cracker would exploit: dictionary words (with reversals
and l33t substitutions), keyboard walks, repeats, sequences, years and
dates. The cheapest non-overlapping decomposition gives a total guess
count, a 0-4 score and crack-time estimates under four attacker
profiles. It can operate as a MessagePack IPC server for integration
with signup forms and editors, or as a CLI application for testing and
debugging.

# Usage

Start the server with default settings:

	crackest

Use an extra dictionary directory and enable debug mode:

	crackest -data /path/to/wordlists -d

Run in CLI mode for interactive testing:

	crackest -c -seq

The data directory may contain plain text frequency lists named
<dictionary>.txt (one word per line, most frequent first) and chunked
binary files named dict_0001.bin, dict_0002.bin, etc. Text lists
become dictionaries under their file names; binary chunks merge into a
"wordlist" dictionary.

# Configuration

Runtime configuration is managed through a TOML file that supports
evaluator parameters, dictionary settings, and CLI defaults:

	[evaluator]
	max_length = 72
	lang = "en"

	[dict]
	data_dir = ""
	max_words = 50000

	[cli]
	show_sequence = false
	show_crack_times = true

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Evaluation
requests are processed synchronously with microsecond timing
information included in responses.

Send an evaluation request:

	{"id": "req1", "cmd": "evaluate", "pw": "tr0ub4dour", "ui": ["alice"]}

Receive the score with crack-time buckets and feedback keys resolved
to display text:

	{"id": "req1", "score": 1, "g": 63808, "lg": 4.8, "ct": {...}, "t": 210}

Passwords longer than the configured maximum answer with an error
response instead of a result.

# Server Mode

The default mode starts a MessagePack IPC server that processes
evaluation requests from stdin and writes responses to stdout. This
design enables integration with editors, password managers and signup
backends through process communication.

	srv := server.NewServer(eval)
	err := srv.Run()

# CLI Mode

CLI mode provides an interactive interface for testing and debugging
the estimator. It reads passwords from stdin and displays the score,
guess totals, crack times, the winning match sequence and actionable
feedback.

	inputHandler := cli.NewInputHandler(eval, showSeq, showTimes)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new
matchers before deploying to server mode.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing extra dictionary files
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-seq
	    Show the winning match sequence in CLI mode
	-lang string
	    Feedback language (default from config)
	-user string
	    Comma-separated user inputs (username, email, site name)
	-config string
	    Custom config file path
	-version
	    Show current version

The embedded frequency lists (common passwords, English words, names
and surnames) are always loaded; the -data flag adds to them rather
than replacing them.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/crackest/crackest/internal/cli"
	"github.com/crackest/crackest/internal/logger"
	"github.com/crackest/crackest/pkg/config"
	"github.com/crackest/crackest/pkg/dictionary"
	"github.com/crackest/crackest/pkg/server"
	"github.com/crackest/crackest/pkg/strength"
)

const (
	Version = "0.3.0"
	AppName = "crackest"
	gh      = "https://github.com/crackest/crackest"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory containing extra dictionary files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	showSeq := flag.Bool("seq", false, "Show the winning match sequence (CLI mode)")
	lang := flag.String("lang", "", "Feedback language, e.g. en or zh_CN")
	userInputs := flag.String("user", "", "Comma-separated user inputs (username, email, site name)")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ Crackest ] Estimates how guessable your passwords are!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))
	}

	opts := strength.Options{
		Lang:      appConfig.Evaluator.Lang,
		MaxLength: appConfig.Evaluator.MaxLength,
	}
	if *lang != "" {
		opts.Lang = *lang
	}

	if *userInputs != "" {
		for _, ui := range strings.Split(*userInputs, ",") {
			if ui = strings.TrimSpace(ui); ui != "" {
				opts.UserInputs = append(opts.UserInputs, ui)
			}
		}
	}

	extraDir := appConfig.Dict.DataDir
	if *dataDir != "" {
		extraDir = *dataDir
	}
	if extraDir != "" {
		extra, err := dictionary.LoadDirectory(extraDir)
		if err != nil {
			log.Fatalf("Failed to load dictionaries from %s: %v", extraDir, err)
			os.Exit(1)
		}
		for name, words := range extra {
			if appConfig.Dict.MaxWords > 0 && len(words) > appConfig.Dict.MaxWords {
				words = words[:appConfig.Dict.MaxWords]
			}
			if opts.ExtraDictionaries == nil {
				opts.ExtraDictionaries = make(map[string][]string)
			}
			opts.ExtraDictionaries[name] = words
			log.Debugf("Loaded dictionary %q: %d words", name, len(words))
		}
	}

	eval := strength.NewEvaluator(opts)
	log.Debug("Evaluator init done")

	// CLI would be mainly used for testing and dbg purposes.
	// Any new matchers or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(eval, *showSeq || appConfig.CLI.ShowSequence, appConfig.CLI.ShowCrackTimes)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo()

	srv := server.NewServer(eval)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" Crackest ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
