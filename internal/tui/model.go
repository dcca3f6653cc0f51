// Package tui implements the kiosk view: the weekly schedule beside a
// "what is happening now" panel that recomputes on every clock tick.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/models"
	"github.com/asanchezgar/rehaplan/internal/schedule"
	"github.com/asanchezgar/rehaplan/internal/speech"
)

type Model struct {
	patient     models.Patient
	synthesizer speech.Synthesizer
	location    *time.Location

	dayIdx   int
	now      time.Time
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the kiosk model for a recognized patient. The location
// controls which weekday counts as "today".
func NewModel(patient models.Patient, synthesizer speech.Synthesizer, loc *time.Location) Model {
	now := time.Now().In(loc)
	return Model{
		patient:     patient,
		synthesizer: synthesizer,
		location:    loc,
		dayIdx:      todayIndex(now),
		now:         now,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
}

// todayIndex maps time.Weekday (Sunday-based) onto the Monday-first WeekDays.
func todayIndex(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = time.Time(msg).In(m.location)
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			m.dayIdx = (m.dayIdx + len(constants.WeekDays) - 1) % len(constants.WeekDays)
		case key.Matches(msg, m.keys.NextDay):
			m.dayIdx = (m.dayIdx + 1) % len(constants.WeekDays)
		case key.Matches(msg, m.keys.Today):
			m.dayIdx = todayIndex(m.now)
		case key.Matches(msg, m.keys.Speak):
			return m, m.speakCmd()
		}
	}
	return m, nil
}

// speakCmd narrates the current context in the background; TTS latency must
// not block the tick loop.
func (m Model) speakCmd() tea.Cmd {
	if m.synthesizer == nil {
		return nil
	}
	sentence := speech.Narrate(m.patient.Name, m.dayContext())
	synth := m.synthesizer
	return func() tea.Msg {
		_ = synth.Speak(context.Background(), sentence)
		return nil
	}
}

func (m Model) day() string {
	return constants.WeekDays[m.dayIdx]
}

// dayContext resolves the context for the selected day. When browsing a day
// other than today, the clock position still applies; the panel is a preview
// of that day at the same time.
func (m Model) dayContext() models.DayContext {
	return schedule.InferContext(m.patient.Week, m.day(), m.now)
}
