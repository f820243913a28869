package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textcombiner/pkg/combine"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// View implements tea.Model
func (m Model) View() string {
	pad := strings.Repeat(" ", barPadding)

	var b strings.Builder
	b.WriteString("\n" + pad + titleStyle.Render("Text File Combiner") + "\n")
	if m.header != "" {
		b.WriteString(pad + headerStyle.Render(m.header) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(pad + m.bar.ViewAs(m.Percent()) + "\n")
	b.WriteString(pad + counterStyle.Render(fmt.Sprintf("%d/%d", m.current, m.max)) + "\n\n")

	switch {
	case m.failed:
		b.WriteString(pad + errorStyle.Render(m.status) + "\n")
	case m.finished:
		b.WriteString(pad + doneStyle.Render(m.status) + "\n")
	default:
		b.WriteString(pad + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	if m.finished {
		b.WriteString(pad + helpStyle.Render("q: quit") + "\n")
	} else {
		b.WriteString(pad + helpStyle.Render("ctrl+c: exit") + "\n")
	}
	return b.String()
}

// Run shows the progress of events until the user quits.
// It returns an error when the run ended with an Error event.
func Run(events <-chan combine.Event, header string, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(NewModel(events, header), opts...).Run()
	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	if m, ok := final.(Model); ok && m.Failed() {
		return errors.New(m.ErrText())
	}
	return nil
}
