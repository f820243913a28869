// Package ui renders a running combination in the terminal.
//
// The model never blocks on the worker: it polls the event channel on a
// fixed interval and drains whatever is queued.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"textcombiner/pkg/combine"
)

// PollInterval is how often the model checks the worker's event channel.
const PollInterval = 100 * time.Millisecond

const barPadding = 4

type pollMsg time.Time

// Model is the bubbletea model for a single run.
type Model struct {
	events <-chan combine.Event
	bar    progress.Model

	header   string
	status   string
	max      int
	current  int
	finished bool
	failed   bool
	closed   bool
	errText  string
}

// NewModel creates a model that reads events until the worker closes the channel.
// header is shown above the status line, e.g. the settings load message.
func NewModel(events <-chan combine.Event, header string) Model {
	return Model{
		events: events,
		bar:    progress.New(progress.WithDefaultGradient()),
		header: header,
		status: "Starting combination...",
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return poll()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - barPadding*2
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc", "enter":
			if m.finished {
				return m, tea.Quit
			}
		}
		return m, nil

	case pollMsg:
		m = m.drain()
		if m.closed {
			return m, nil
		}
		return m, poll()
	}

	return m, nil
}

// drain applies every queued event without waiting for more.
func (m Model) drain() Model {
	for {
		select {
		case ev, ok := <-m.events:
			if !ok {
				m.closed = true
				return m
			}
			m = m.apply(ev)
		default:
			return m
		}
	}
}

func (m Model) apply(ev combine.Event) Model {
	switch ev.Kind {
	case combine.EventStatus:
		m.status = ev.Text
	case combine.EventProgressMax:
		m.max = ev.Value
		m.current = 0
	case combine.EventProgress:
		m.current = ev.Value
	case combine.EventDone:
		m.status = ev.Text
		m.current = m.max
		m.finished = true
	case combine.EventError:
		m.status = "Error: " + ev.Text
		m.errText = ev.Text
		m.current = 0
		m.finished = true
		m.failed = true
	}
	return m
}

// Percent returns the fraction of candidates handled so far.
func (m Model) Percent() float64 {
	if m.max <= 0 {
		if m.finished && !m.failed {
			return 1
		}
		return 0
	}
	return float64(m.current) / float64(m.max)
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Finished reports whether the run reached Done or Error.
func (m Model) Finished() bool {
	return m.finished
}

// Failed reports whether the run ended with an Error event.
func (m Model) Failed() bool {
	return m.failed
}

// ErrText returns the error message of a failed run.
func (m Model) ErrText() string {
	return m.errText
}

func poll() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}
