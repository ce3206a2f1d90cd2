/*
Package main implements t9, a phone keypad word tool.

t9 answers four questions about the classic phone keypad (2=abc, 3=def, ...,
9=wxyz; 0 and 1 carry no letters):

 1. how many key presses it takes to type a word,
 2. which number a word spells,
 3. every letter combination a number could stand for,
 4. which of those combinations are words in a dictionary.

# Usage

Answer the four questions, one input line each:

	t9
	Input: bob
	Output: 7
	Input: bob
	Output: 262
	Input: 23
	Output: ['ad', 'ae', 'af', 'bd', 'be', 'bf', 'cd', 'ce', 'cf']
	Input: 43556
	Output: ['hello']

Explore a word list interactively:

	t9 -c -dict /usr/share/dict/words -plain

Serve queries over msgpack on stdin/stdout (see package server):

	t9 -s

# Dictionary

The word list is read from dict.path in the config (WordsRTF.RTF by
default). Relative paths are looked up in the working directory, next to the
executable, and in the config directory. Lines are trimmed and, unless the
list is plain, lose their trailing marker character ("hello/" -> "hello").

# Configuration

Settings live in a TOML file, created with defaults on first run:

	[dict]
	path = "WordsRTF.RTF"
	format = "marked"

	[cli]
	prompt = "Input: "
	output_prefix = "Output: "
	stop_on_error = false
	force_prompt = false
	max_digits = 12
	predict_limit = 10

	[server]
	max_digits = 12
	cache_size = 4
	predict_limit = 24

# Command Line Flags

	-version  Show current version
	-d        Enable debug logging
	-c        Run the interactive REPL
	-s        Run the msgpack IPC server
	-config   Path to the config file
	-dict     Path to the word list (overrides dict.path)
	-plain    Word list lines carry no trailing marker
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bingoyahoo/t9/internal/cli"
	"github.com/bingoyahoo/t9/internal/utils"
	"github.com/bingoyahoo/t9/pkg/config"
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/bingoyahoo/t9/pkg/keypad"
	"github.com/bingoyahoo/t9/pkg/server"
	"github.com/bingoyahoo/t9/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

const (
	Version = "1.0.0"
	AppName = "t9"
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

// main wires config, keypad and dictionary together and hands off to one of
// the front ends. It does not implement query logic itself.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	replMode := flag.Bool("c", false, "Run the interactive REPL")
	serverMode := flag.Bool("s", false, "Run the msgpack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Path to the config file (default: user config dir)")
	dictPath := flag.String("dict", "", "Path to the word list (overrides dict.path in config)")
	plain := flag.Bool("plain", false, "Word list lines have no trailing marker character")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	if *configPath == "" {
		*configPath = pathResolver.GetConfigPath("config.toml")
	}
	log.Debugf("Using config file: (%s)", *configPath)

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dictPath == "" {
		*dictPath = cfg.Dict.Path
	}
	source := dictionary.File(pathResolver.FindDictionary(*dictPath))
	dictOpts := cfg.DictOptions()
	if *plain {
		dictOpts.Format = dictionary.FormatPlain
	}
	log.Debug("Dictionary", "path", source.Path, "format", dictOpts.Format)

	kp := keypad.Default()

	switch {
	case *serverMode:
		suggester := suggest.New(kp, source, dictOpts)
		suggester.Loader = dictionary.NewCache(cfg.Server.CacheSize)
		srv := server.NewServer(kp, suggester, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case *replMode:
		log.SetReportTimestamp(false)
		suggester := suggest.New(kp, source, dictOpts)
		suggester.Loader = dictionary.NewCache(1)
		handler := cli.NewInputHandler(kp, suggester, cfg.CLI.MaxDigits, cfg.CLI.PredictLimit, os.Stdin, os.Stdout)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	default:
		session := cli.NewSession(kp, source, dictOpts, os.Stdin, os.Stdout, cli.SessionOptions{
			Prompt:       cfg.CLI.Prompt,
			OutputPrefix: cfg.CLI.OutputPrefix,
			ShowPrompt:   cfg.CLI.ForcePrompt || term.IsTerminal(int(os.Stdin.Fd())),
			StopOnError:  cfg.CLI.StopOnError,
		})
		if err := session.Run(); err != nil {
			log.Debugf("Session ended with error: %v", err)
			os.Exit(1)
		}
	}
}

// printVersion shows a short styled banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["layout"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ t9 ] phone keypad words")
	logger.Print("", "version", Version)
	logger.Print("", "layout", "2=abc 3=def 4=ghi 5=jkl 6=mno 7=pqrs 8=tuv 9=wxyz")
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
