package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/validate"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldRequired fieldKind = iota
	fieldStart
	fieldEnd
	fieldBreak
)

// formField is one focusable input. Required fields carry key, day fields
// carry day.
type formField struct {
	kind  fieldKind
	key   domain.FieldKey
	day   domain.Weekday
	input textinput.Model
}

func (f formField) isDay() bool {
	return f.kind != fieldRequired
}

type bannerKind int

const (
	bannerInfo bannerKind = iota
	bannerSuccess
	bannerError
)

// banner is the transient message line. seq tells a stale expiry apart
// from the one belonging to the current text.
type banner struct {
	text string
	kind bannerKind
	seq  int
}

type bannerExpiredMsg struct{ seq int }

type exportDoneMsg struct {
	result *service.ExportResult
	err    error
}

// formModel is the interactive timesheet. All form state lives in the
// session; the text inputs mirror it.
type formModel struct {
	ctx      context.Context
	session  *service.FormSession
	exporter service.Exporter
	keys     formKeyMap

	fields []formField
	focus  int

	banner    banner
	bannerTTL time.Duration

	// exporting mirrors the exporter's busy flag between the keypress
	// and the completion message.
	exporting       bool
	confirmingReset bool
	showValidation  bool

	width int
}

func newFormModel(ctx context.Context, rules domain.WeekRules, exporter service.Exporter, bannerTTL time.Duration) *formModel {
	m := &formModel{
		ctx:       ctx,
		session:   service.NewFormSession(rules),
		exporter:  exporter,
		keys:      defaultFormKeyMap(),
		bannerTTL: bannerTTL,
	}

	for _, k := range domain.RequiredFieldKeys {
		m.fields = append(m.fields, formField{kind: fieldRequired, key: k, input: newFieldInput("", 40, 30)})
	}
	for d := domain.Monday; d <= domain.Friday; d++ {
		m.fields = append(m.fields,
			formField{kind: fieldStart, day: d, input: newFieldInput("HH:MM", 5, 5)},
			formField{kind: fieldEnd, day: d, input: newFieldInput("HH:MM", 5, 5)},
			formField{kind: fieldBreak, day: d, input: newFieldInput("min", 3, 3)},
		)
	}
	m.fields[0].input.Focus()
	m.syncInputs()
	return m
}

func newFieldInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// load replaces the session's form and refreshes the inputs.
func (m *formModel) load(form domain.Form) {
	m.session.Load(form)
	m.syncInputs()
}

func (m *formModel) syncInputs() {
	form := m.session.Form()
	for i := range m.fields {
		f := &m.fields[i]
		switch f.kind {
		case fieldRequired:
			f.input.SetValue(form.Field(f.key))
		case fieldStart:
			f.input.SetValue(form.Days[f.day].Start)
		case fieldEnd:
			f.input.SetValue(form.Days[f.day].End)
		case fieldBreak:
			f.input.SetValue(strconv.Itoa(form.Days[f.day].BreakMinutes))
		}
	}
}

func (m *formModel) Init() tea.Cmd {
	return nil
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case bannerExpiredMsg:
		if msg.seq == m.banner.seq {
			m.banner.text = ""
		}
		return m, nil
	case exportDoneMsg:
		return m, m.finishExport(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *formModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirmingReset {
		return m.answerReset(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	case key.Matches(msg, m.keys.Reset):
		m.confirmingReset = true
		return nil
	}
	return m.editFocused(msg)
}

// editFocused forwards msg to the focused input and pushes the new value
// into the session, which recomputes the day and the week immediately.
func (m *formModel) editFocused(msg tea.KeyMsg) tea.Cmd {
	f := &m.fields[m.focus]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	value := f.input.Value()
	switch f.kind {
	case fieldRequired:
		m.session.SetField(f.key, value)
	case fieldStart:
		m.session.SetStart(f.day, value)
	case fieldEnd:
		m.session.SetEnd(f.day, value)
	case fieldBreak:
		m.session.SetBreakText(f.day, value)
	}
	return cmd
}

// moveFocus cycles focus by delta. Leaving the fields of a day runs the
// blur check for that day.
func (m *formModel) moveFocus(delta int) tea.Cmd {
	prevIdx := m.focus
	prev := m.fields[prevIdx]
	m.fields[prevIdx].input.Blur()
	if prev.kind == fieldBreak {
		// Show the stored minutes for text like "" or "4x".
		m.fields[prevIdx].input.SetValue(strconv.Itoa(m.session.Day(prev.day).BreakMinutes))
	}

	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()

	next := m.fields[m.focus]
	if prev.isDay() && (!next.isDay() || next.day != prev.day) {
		return m.blurDay(prev.day)
	}
	return nil
}

// blurDay surfaces a day's ordering or break problem in the banner.
func (m *formModel) blurDay(day domain.Weekday) tea.Cmd {
	kind := m.session.BlurDay(day)
	entry := m.session.Day(day)
	if kind == domain.EntryOK {
		kind = entry.Error
	}
	if kind == domain.EntryOK {
		return nil
	}
	return m.showBanner(validate.DayMessage(entry, kind), bannerError)
}

func (m *formModel) answerReset(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Confirm) && !key.Matches(msg, m.keys.Cancel) {
		return nil
	}
	m.confirmingReset = false

	confirmed := key.Matches(msg, m.keys.Confirm)
	if !m.session.Reset(func() bool { return confirmed }) {
		return m.showBanner("Reset cancelled", bannerInfo)
	}

	m.syncInputs()
	m.fields[m.focus].input.Blur()
	m.focus = 0
	m.fields[0].input.Focus()
	m.showValidation = false
	return m.showBanner("Form cleared", bannerInfo)
}

func (m *formModel) startExport() tea.Cmd {
	if m.exporting || m.exporter.Busy() {
		return m.showBanner("An export is already in progress", bannerError)
	}

	result := m.session.Validate()
	if !result.IsValid {
		m.showValidation = true
		return m.showBanner(strings.Join(result.Messages, "\n"), bannerError)
	}

	m.exporting = true
	exporter, ctx, form := m.exporter, m.ctx, m.session.Form()
	return tea.Batch(
		m.showBanner("Generating report...", bannerInfo),
		func() tea.Msg {
			res, err := exporter.Export(ctx, form)
			return exportDoneMsg{result: res, err: err}
		},
	)
}

func (m *formModel) finishExport(msg exportDoneMsg) tea.Cmd {
	m.exporting = false
	if msg.err == nil {
		return m.showBanner("Report saved to "+msg.result.Path, bannerSuccess)
	}

	var invalid *service.ValidationError
	switch {
	case errors.As(msg.err, &invalid):
		m.showValidation = true
		return m.showBanner(strings.Join(invalid.Result.Messages, "\n"), bannerError)
	case errors.Is(msg.err, domain.ErrExportInProgress):
		return m.showBanner("An export is already in progress", bannerError)
	default:
		return m.showBanner("Could not create the report: "+msg.err.Error(), bannerError)
	}
}

// showBanner replaces the banner text and schedules its expiry.
func (m *formModel) showBanner(text string, kind bannerKind) tea.Cmd {
	m.banner = banner{text: text, kind: kind, seq: m.banner.seq + 1}
	seq := m.banner.seq
	return tea.Tick(m.bannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}
