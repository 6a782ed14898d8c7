package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pkaramon/fex/internal/app"
	"github.com/pkaramon/fex/internal/config"
	"github.com/pkaramon/fex/internal/history"
)

func main() {
	cfg := config.Default()
	if _, err := config.LoadFile(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	dir := flag.String("dir", cfg.StartDir, "directory to open")
	caseSensitive := flag.Bool("case-sensitive-filter", cfg.CaseSensitiveFilter, "match listing filters case-sensitively")
	historyLimit := flag.Int("history-limit", cfg.HistoryLimit, "number of recent files to keep")
	logFile := flag.String("log-file", cfg.LogFile, "path to the log file")
	flag.Parse()

	// Expand ~ and make the start dir absolute so watcher paths and the
	// history store see stable paths.
	cfg.StartDir = config.ExpandHome(*dir)
	if abs, err := filepath.Abs(cfg.StartDir); err == nil {
		cfg.StartDir = abs
	}
	cfg.CaseSensitiveFilter = *caseSensitive
	cfg.HistoryLimit = *historyLimit
	cfg.LogFile = config.ExpandHome(*logFile)

	if err := setupLogging(cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "error opening log file:", err)
		os.Exit(1)
	}

	info, err := os.Stat(cfg.StartDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "not a directory: %s\n", cfg.StartDir)
		os.Exit(1)
	}

	log.Info("starting", "dir", cfg.StartDir)

	hist := openHistory()
	if hist != nil {
		defer hist.Close()
	}

	a, err := app.New(cfg, hist)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error starting:", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(a, tea.WithAltScreen())
	a.SetProgram(p)
	if _, err := p.Run(); err != nil {
		log.Fatal("program exited", "err", err)
	}
}

// setupLogging sends the default logger to a file; stdout belongs to the
// terminal UI.
func setupLogging(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return nil
}

// openHistory opens the recent-files store. A failure is logged and the
// app runs without history rather than refusing to start.
func openHistory() *history.Store {
	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Error("history dir unavailable", "err", err)
		return nil
	}
	hist, err := history.Open(filepath.Join(dataDir, "history.db"))
	if err != nil {
		log.Error("history store unavailable", "err", err)
		return nil
	}
	return hist
}
