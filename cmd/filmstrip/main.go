package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dstrand/filmstrip/internal/config"
	"github.com/dstrand/filmstrip/internal/prefs"
	"github.com/dstrand/filmstrip/internal/queue"
	"github.com/dstrand/filmstrip/internal/render"
	"github.com/dstrand/filmstrip/internal/server"
	"github.com/dstrand/filmstrip/internal/stream"
	"github.com/dstrand/filmstrip/internal/ui"
)

const releaseRepo = "dstrand/filmstrip"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			runVersion(releaseRepo)
			return
		case "update":
			runUpdate(releaseRepo)
			return
		}
	}

	eventsPath := flag.String("events", "-", "generation event stream: a JSONL file path, or - for stdin")
	bind := flag.String("bind", "", "preview server bind address (overrides config)")
	typewriterMS := flag.Int("typewriter", 0, "typewriter reveal interval in ms (persisted to prefs)")
	flag.Parse()

	if err := run(*eventsPath, *bind, *typewriterMS); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(eventsPath, bind string, typewriterMS int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p, err := prefs.Load("")
	if err == nil {
		if p.Theme != "" {
			cfg.UI.Theme = p.Theme
		}
		if p.TypewriterMS > 0 {
			cfg.UI.TypewriterMS = p.TypewriterMS
		}
	}

	if bind != "" {
		cfg.Preview.Bind = bind
	}
	if typewriterMS > 0 {
		cfg.UI.TypewriterMS = typewriterMS
		p.TypewriterMS = typewriterMS
		if err := prefs.Save("", p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving preferences: %v\n", err)
		}
	}

	events, input, cleanup, err := openEventSource(eventsPath)
	if err != nil {
		return err
	}
	defer cleanup()

	q := queue.New("")
	renderer := render.NewDocRenderer()

	srv := server.New(q, cfg.Preview.Bind)
	previewURL, err := srv.Start()
	if err != nil {
		return err
	}
	defer func() {
		_ = srv.Shutdown(context.Background())
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if input != nil {
		opts = append(opts, tea.WithInput(input))
	}
	program := tea.NewProgram(ui.NewApp(cfg, q, previewURL), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	parser := stream.NewParser(events, cfg.Stream.BufferSize)
	go parser.Parse(ctx)
	go consumeEvents(q, renderer, parser, program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// consumeEvents drains the parsed event stream into the queue and the UI.
// File events kick off an async render; lifecycle events are forwarded as
// messages so panels can react.
func consumeEvents(q *queue.Queue, r render.Renderer, parser *stream.Parser, program *tea.Program) {
	for ev := range parser.Events() {
		switch ev.Type {
		case stream.EventRunStart:
			q.Reset(ev.RunID)
			program.Send(ui.RunStartedMsg{RunID: ev.RunID})
		case stream.EventFile:
			fe := q.Append(ev.Path, ev.Content)
			render.Dispatch(q, fe, r)
		case stream.EventUIState:
			program.Send(ui.UIStateMsg{State: ev.State})
		case stream.EventRunEnd:
			program.Send(ui.RunEndedMsg{})
		}
	}
}

// openEventSource resolves the -events flag. When the stream comes from
// stdin the keyboard must come from the terminal instead, so the returned
// input (when non-nil) replaces the program's default stdin input.
func openEventSource(path string) (events io.Reader, input *os.File, cleanup func(), err error) {
	if path == "-" || path == "" {
		tty, ttyErr := os.Open("/dev/tty")
		if ttyErr != nil {
			return nil, nil, nil, fmt.Errorf("events on stdin but no terminal available: %w", ttyErr)
		}
		return os.Stdin, tty, func() { tty.Close() }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open event stream: %w", err)
	}
	return f, nil, func() { f.Close() }, nil
}
