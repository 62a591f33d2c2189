package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Zaphoood/urstack/src/config"
	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/menu"
	"github.com/Zaphoood/urstack/src/prompt"
	"github.com/Zaphoood/urstack/src/tui"
	"github.com/Zaphoood/urstack/src/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	configPath string
	plain      bool
	logFile    string

	rootCmd = &cobra.Command{
		Use:   "urstack [CAPACITY]",
		Short: "Keep a bounded history of actions that can be undone and redone",
		Long: `urstack records actions in a history of fixed capacity. Actions can be undone
and redone; inserting a new action after undoing discards the undone ones,
and once the history is full the oldest action is evicted.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path of the config file (default is the user config directory)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "use the numbered console menu instead of the terminal UI")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	capacity, capacityGiven, err := util.ParseCapacityArg(cmd.Name(), args)
	if err != nil {
		return err
	}
	if capacityGiven {
		cfg.Capacity = capacity
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = plain
	}
	if len(logFile) > 0 {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if cfg.Plain || !interactive {
		return runPlain(cfg, capacityGiven)
	}
	return runTUI(cfg, capacityGiven)
}

func runPlain(cfg config.Config, capacityGiven bool) error {
	// Without a log file, log keeps writing to stderr
	logger := log.Default()
	if len(cfg.LogFile) > 0 {
		path, err := util.ExpandPath(cfg.LogFile)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	styles := prompt.PlainStyles()
	if cfg.Color && isatty.IsTerminal(os.Stdout.Fd()) {
		styles = prompt.DefaultStyles()
	}
	p := prompt.NewConsole(os.Stdin, colorable.NewColorableStdout(), styles)

	m, err := menu.New(p, cfg.Capacity, logger)
	if err != nil {
		return err
	}
	if !capacityGiven {
		if err := m.Reset(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return m.Run()
}

func runTUI(cfg config.Config, capacityGiven bool) error {
	var logger *log.Logger
	if len(cfg.LogFile) > 0 {
		path, err := util.ExpandPath(cfg.LogFile)
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(path, "urstack")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	} else {
		// The terminal belongs to the UI
		log.SetOutput(io.Discard)
	}

	var initial *history.BoundedHistory
	if capacityGiven {
		h, err := history.New(cfg.Capacity)
		if err != nil {
			return err
		}
		h.SetLogger(logger)
		initial = h
	}

	p := tea.NewProgram(tui.NewMainModel(initial, tui.Options{
		DefaultCapacity:       cfg.Capacity,
		ClipboardClearSeconds: cfg.ClipboardClearSeconds,
		Logger:                logger,
	}), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
