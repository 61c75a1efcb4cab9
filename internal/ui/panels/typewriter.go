package panels

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Typewriter reveals a string one character per tick for transient status
// messages. Changing the text cancels the in-flight reveal (the generation
// counter makes stale ticks inert) and restarts from zero, so two reveal
// loops never run concurrently for the same instance. The done message
// fires exactly once per text value.
type Typewriter struct {
	id    int
	speed time.Duration
	text  []rune
	shown int
	gen   int
	done  bool
}

// NewTypewriter creates a typewriter. id distinguishes instances so tick
// messages can be routed; speed is the per-character cadence.
func NewTypewriter(id int, speed time.Duration) Typewriter {
	return Typewriter{id: id, speed: speed, done: true}
}

// SetText starts revealing s. Setting the current text again is a no-op;
// a different text cancels the previous reveal and restarts.
func (t Typewriter) SetText(s string) (Typewriter, tea.Cmd) {
	if string(t.text) == s {
		return t, nil
	}
	t.text = []rune(s)
	t.shown = 0
	t.gen++
	t.done = len(t.text) == 0
	if t.done {
		return t, nil
	}
	return t, t.tick()
}

// Start schedules the first tick of the current reveal. Used after
// construction when the initial text was set before the program started.
func (t Typewriter) Start() tea.Cmd {
	if t.done {
		return nil
	}
	return t.tick()
}

func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.ID != t.id || tick.Gen != t.gen || t.done {
		return t, nil
	}
	t.shown++
	if t.shown >= len(t.text) {
		t.shown = len(t.text)
		t.done = true
		id := t.id
		return t, func() tea.Msg { return TypewriterDoneMsg{ID: id} }
	}
	return t, t.tick()
}

func (t Typewriter) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.speed, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id, Gen: gen}
	})
}

// View returns the revealed prefix of the text.
func (t Typewriter) View() string {
	return string(t.text[:t.shown])
}

func (t Typewriter) Done() bool {
	return t.done
}

func (t Typewriter) Text() string {
	return string(t.text)
}
