// Package teatest drives bubbletea models synchronously in tests.
//
// The driver stands in for tea.Program: it calls Update directly and runs
// each returned Cmd inline. A Cmd that does not return within the command
// timeout (cursor blinks, tea.Tick timers, an export stuck on a blocked
// renderer) is abandoned and counted in Skipped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// MaxDrainDepth bounds how many chained Cmds one Send may trigger.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates immediate Cmds from timer-backed ones.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg comes out of a Cmd.
	Quitting bool
	// Skipped counts Cmds abandoned after the command timeout.
	Skipped int

	cmdTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// New creates a Driver. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// Press sends a key of the given type, e.g. tea.KeyTab or tea.KeyCtrlE.
func (d *Driver) Press(key tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: key})
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressTab moves focus forward.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Press(tea.KeyTab)
}

// PressShiftTab moves focus backward.
func (d *Driver) PressShiftTab() {
	d.T.Helper()
	d.Press(tea.KeyShiftTab)
}

// PressBackspace deletes one character.
func (d *Driver) PressBackspace() {
	d.T.Helper()
	d.Press(tea.KeyBackspace)
}

// PressEnter sends Enter.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Press(tea.KeyEnter)
}

// PressEsc sends Escape.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Press(tea.KeyEsc)
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Press(tea.KeyCtrlC)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// Clear deletes n characters before the cursor.
func (d *Driver) Clear(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.PressBackspace()
	}
}

// View returns the current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// AssertViewContains fails the test when the view lacks every one of want.
func (d *Driver) AssertViewContains(want ...string) {
	d.T.Helper()
	view := d.View()
	for _, w := range want {
		assert.Contains(d.T, view, w)
	}
}

// AssertViewNotContains fails the test when the view shows any of unwanted.
func (d *Driver) AssertViewNotContains(unwanted ...string) {
	d.T.Helper()
	view := d.View()
	for _, u := range unwanted {
		assert.NotContains(d.T, view, u)
	}
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.run(cmd)
	if !ok {
		d.Skipped++
		return
	}
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

// run executes cmd and reports false when it outlives the command timeout.
func (d *Driver) run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.cmdTimeout):
		return nil, false
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which chain into timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
