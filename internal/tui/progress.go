// Package tui provides terminal user interface components for probectl
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/probe"
)

// TargetMsg announces the target currently being polled.
type TargetMsg struct {
	Index int
	Total int
	URL   string
}

// AttemptMsg reports one finished poll attempt.
type AttemptMsg probe.Attempt

// DoneMsg ends the progress display.
type DoneMsg struct {
	Err error
}

// Styles
var (
	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the bubbletea model for the poll progress display
type Model struct {
	spinner  spinner.Model
	deadline time.Duration
	index    int
	total    int
	url      string
	attempt  probe.Attempt
	canceled bool
	done     bool
	width    int
}

// NewProgress creates a progress display for a poll run against the
// given overall deadline.
func NewProgress(deadline time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		spinner:  s,
		deadline: deadline,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TargetMsg:
		m.index = msg.Index
		m.total = msg.Total
		m.url = msg.URL
		m.attempt = probe.Attempt{}
		return m, nil

	case AttemptMsg:
		m.attempt = probe.Attempt(msg)
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	target := m.url
	if m.total > 1 {
		target = fmt.Sprintf("%s (%d/%d)", m.url, m.index, m.total)
	}
	b.WriteString(fmt.Sprintf("%s probing %s\n", m.spinner.View(), urlStyle.Render(target)))

	if m.attempt.N > 0 {
		status := fmt.Sprintf("attempt %d | %s of %s elapsed",
			m.attempt.N,
			m.attempt.Elapsed.Round(time.Second),
			m.deadline,
		)
		b.WriteString(dimStyle.Render(status) + "\n")

		if m.attempt.Err != nil {
			b.WriteString(dimStyle.Render(truncateMessage(m.attempt.Err.Error(), m.width-4)) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("[ctrl+c] Abort"))

	return b.String()
}

// Canceled reports whether the user aborted the display.
func (m Model) Canceled() bool {
	return m.canceled
}

func truncateMessage(msg string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen-3] + "..."
}

// RunProgress renders a live progress display while fn runs. fn receives
// a send function for progress messages and runs on its own goroutine;
// its error becomes the result once the display stops. Aborting the
// display calls cancel so fn can wind down.
func RunProgress(deadline time.Duration, cancel context.CancelFunc, fn func(send func(tea.Msg)) error) error {
	p := tea.NewProgram(NewProgress(deadline))

	result := make(chan error, 1)
	go func() {
		err := fn(p.Send)
		result <- err
		p.Send(DoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		cancel()
		<-result
		return err
	}
	if final.(Model).Canceled() {
		cancel()
		<-result
		return errors.New(errors.ExitGeneralError, "aborted")
	}
	return <-result
}
