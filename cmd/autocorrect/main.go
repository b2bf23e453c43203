// Copyright 2025 The Autocorrect Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the autocorrect completion index as a msgpack IPC server or
as an interactive CLI.

Every word read from the corpora is counted in a trie whose nodes cache the
three most frequent words below them, so a completion costs one walk down the
prefix no matter how large the index grows.

# Usage

Index a directory of text files and serve completions on stdin/stdout:

	autocorrect -corpus ./books

Load a word/count dictionary, fall back to the nearest known prefix, and try
it interactively:

	autocorrect -dict words.bin -fix -c

Export everything that was indexed as a dictionary:

	autocorrect -corpus ./books -export words.bin

# Configuration

Defaults come from a TOML file, created on first run at
~/.config/autocorrect/config.toml unless -config points elsewhere:

	[server]
	max_prefix = 60
	allow_insert = true
	correct = false

	[corpus]
	paths = []
	extensions = [".txt"]
	dict_files = []
	export_path = ""

	[cli]
	show_freq = true
	correct = false
	max_prefix = 60

Flags override the file.

# Command Line Flags

	-config string
	    Path to a config.toml
	-corpus string
	    Comma separated text files or directories to index
	-dict string
	    Comma separated binary dictionaries to load
	-export string
	    Write the loaded vocabulary as a binary dictionary
	-c  Run the interactive CLI instead of the server
	-fix
	    Complete from the nearest known prefix when a prefix is unknown
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/autocorrect/internal/cli"
	"github.com/bastiangx/autocorrect/internal/logger"
	"github.com/bastiangx/autocorrect/internal/utils"
	"github.com/bastiangx/autocorrect/pkg/config"
	"github.com/bastiangx/autocorrect/pkg/dictionary"
	"github.com/bastiangx/autocorrect/pkg/server"
	"github.com/bastiangx/autocorrect/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "autocorrect"
	gh      = "https://github.com/bastiangx/autocorrect"
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

// main wires config, corpora and the chosen front end together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml")
	corpusPaths := flag.String("corpus", "", "Comma separated text files or directories to index")
	dictFiles := flag.String("dict", "", "Comma separated binary dictionaries to load")
	exportPath := flag.String("export", "", "Write the loaded vocabulary as a binary dictionary")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	fixMode := flag.Bool("fix", false, "Complete from the nearest known prefix when a prefix is unknown")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(usedPath))

	if *corpusPaths != "" {
		appConfig.Corpus.Paths = splitList(*corpusPaths)
	}
	if *dictFiles != "" {
		appConfig.Corpus.DictFiles = splitList(*dictFiles)
	}
	if *exportPath != "" {
		appConfig.Corpus.ExportPath = *exportPath
	}
	if *fixMode {
		appConfig.Server.Correct = true
		appConfig.CLI.Correct = true
	}

	completer := suggest.NewCompleter()
	vocab := dictionary.NewVocabulary()
	if err := loadCorpora(appConfig.Corpus, dictionary.MultiSink(completer, vocab)); err != nil {
		log.Fatalf("Failed to load corpora: %v", err)
	}

	if path := appConfig.Corpus.ExportPath; path != "" {
		if err := dictionary.SaveBinary(vocab, path); err != nil {
			log.Fatalf("Failed to export dictionary: %v", err)
		}
		log.Infof("Exported %s words (%s occurrences) to %s",
			utils.FormatWithCommas(vocab.Len()),
			utils.FormatWithCommas(vocab.Total()),
			utils.GetAbsolutePath(path))
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer, vocab, appConfig.CLI)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig.Server)
	showStartupInfo(completer)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped after %d requests: %v", srv.Requests(), err)
	}
	log.Debugf("Served %d requests", srv.Requests())
}

// loadCorpora feeds the dictionaries first, then the text corpora.
func loadCorpora(corpus config.CorpusConfig, sink dictionary.Sink) error {
	loader := dictionary.NewLoader(sink, corpus.Extensions...)
	if len(corpus.DictFiles) > 0 {
		if _, err := loader.LoadPaths(corpus.DictFiles...); err != nil {
			return err
		}
	}
	if len(corpus.Paths) > 0 {
		if _, err := loader.LoadPaths(corpus.Paths...); err != nil {
			return err
		}
	}
	if len(corpus.DictFiles)+len(corpus.Paths) == 0 {
		log.Warn("No corpus configured, starting with an empty index...")
	}

	stats := loader.Stats()
	log.Debug("Corpora loaded",
		"files", stats.Files,
		"tokens", stats.Tokens,
		"entries", stats.Entries,
		"skipped", stats.Skipped)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ autocorrect ] top-3 completions in one trie walk")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints a short banner to stderr.
func showStartupInfo(completer *suggest.Completer) {
	stats := completer.Stats()
	banner := logger.NewWithConfig(os.Stderr, AppName, log.InfoLevel, false, false)
	banner.Infof("Version: %s", Version)
	banner.Infof("Process ID: [ %d ]", os.Getpid())
	banner.Infof("words: %s, insertions: %s",
		utils.FormatWithCommas(stats["totalWords"]),
		utils.FormatWithCommas(stats["insertions"]))
	banner.Info("status: ready")
}
