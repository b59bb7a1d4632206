package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gridedit/internal/config"
	"gridedit/internal/grid"
	"gridedit/internal/render"
	"gridedit/internal/trace"
	"gridedit/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds the parsed command line.
type options struct {
	configPath string
	logFile    string
	html       bool
	rows       int
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default $"+config.ConfigEnv+" or ~/.config/gridedit/config.toml)")
	flag.StringVar(&opts.logFile, "log", "", "write a debug log to this file")
	flag.BoolVar(&opts.html, "html", false, "print the final table as HTML after exiting")
	flag.IntVar(&opts.rows, "rows", 1, "number of rows to start with")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridedit [flags]\n\n")
		fmt.Fprintf(os.Stderr, "gridedit is an editable table in the terminal. Press enter or click a\n")
		fmt.Fprintf(os.Stderr, "cell to edit it; tab and ctrl+arrows move between cells.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if opts.rows < 1 {
		fmt.Fprintln(os.Stderr, "error: --rows must be at least 1")
		flag.Usage()
		os.Exit(1)
	}

	return opts
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}

	// The terminal belongs to the TUI; log to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "gridedit")
		if err != nil {
			return fmt.Errorf("open log %q: %w", cfg.Log.File, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	schema, err := cfg.Schema()
	if err != nil {
		return err
	}
	g := grid.New(schema)
	for i := 1; i < opts.rows; i++ {
		g.AppendRow()
	}

	ctx := context.Background()
	recorder, err := trace.NewOTLPRecorder(ctx, cfg.Tracing())
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	ctrl := grid.NewController(g)
	app := ui.NewAppModel(ctrl, ui.Options{
		ShowPosition: cfg.UI.ShowPosition,
		Mouse:        cfg.UI.Mouse,
		Recorder:     recorder,
	})
	log.Printf("start: %d columns, %d rows", schema.Len(), g.Len())

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		return err
	}

	if opts.html {
		return render.HTML(os.Stdout, g, ctrl.Focus())
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "gridedit: %v\n", err)
		os.Exit(1)
	}
}
