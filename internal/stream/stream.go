package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
)

// EventType identifies one line of the generation pipeline's JSONL stream.
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventFile     EventType = "file"
	EventUIState  EventType = "ui_state"
	EventRunEnd   EventType = "run_end"
)

// Event is one decoded line. Which fields are set depends on Type.
type Event struct {
	Type    EventType
	RunID   string
	Path    string
	Content string
	State   string
}

// wireEvent mirrors the producer's JSON shape.
type wireEvent struct {
	Type    string `json:"type"`
	RunID   string `json:"run_id,omitempty"`
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
	State   string `json:"state,omitempty"`
}

// Parser reads the pipeline's event stream line by line. Blank lines are
// skipped and lines that don't decode are dropped: malformed producer
// input degrades, it never aborts the stream.
type Parser struct {
	reader io.Reader
	events chan Event
	done   chan error
}

func NewParser(r io.Reader, bufSize int) *Parser {
	if bufSize <= 0 {
		bufSize = 256
	}
	return &Parser{
		reader: r,
		events: make(chan Event, bufSize),
		done:   make(chan error, 1),
	}
}

func (p *Parser) Parse(ctx context.Context) {
	defer close(p.events)

	scanner := bufio.NewScanner(p.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024) // generated files can be large

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			p.done <- ctx.Err()
			return
		default:
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var w wireEvent
		if err := json.Unmarshal([]byte(line), &w); err != nil {
			continue
		}

		switch EventType(w.Type) {
		case EventRunStart:
			p.send(ctx, Event{Type: EventRunStart, RunID: w.RunID})
		case EventFile:
			p.send(ctx, Event{Type: EventFile, Path: w.Path, Content: w.Content})
		case EventUIState:
			p.send(ctx, Event{Type: EventUIState, State: w.State})
		case EventRunEnd:
			p.send(ctx, Event{Type: EventRunEnd})
		}
	}

	if err := scanner.Err(); err != nil {
		p.done <- err
	} else {
		p.done <- nil
	}
}

func (p *Parser) send(ctx context.Context, event Event) {
	select {
	case <-ctx.Done():
	case p.events <- event:
	}
}

func (p *Parser) Events() <-chan Event {
	return p.events
}

func (p *Parser) Done() <-chan error {
	return p.done
}
