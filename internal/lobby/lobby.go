// Package lobby implements the status/reconnect screen shown before a
// connection attempt and whenever the client falls back out of Play: it
// shows connect progress while attempting, and the disconnect reason (or
// a generic reconnect prompt) once a session ends.
package lobby

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const genericReconnectText = "please reconnect"

// Status is the lobby's current state.
type Status int

const (
	StatusConnecting Status = iota
	StatusDisconnected
)

// DisconnectedMsg moves the lobby into StatusDisconnected. Reason is the
// server- or transport-supplied cause; an empty Reason renders the
// generic reconnect text.
type DisconnectedMsg struct {
	Reason string
}

// ConnectingMsg moves the lobby back into StatusConnecting, e.g. when the
// user retries.
type ConnectingMsg struct {
	Address string
}

// Model is the bubbletea model for the lobby screen.
type Model struct {
	status  Status
	address string
	reason  string
	spinner spinner.Model
	width   int
}

func New(address string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{status: StatusConnecting, address: address, spinner: s}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case DisconnectedMsg:
		m.status = StatusDisconnected
		m.reason = strings.TrimSpace(msg.Reason)
		return m, nil

	case ConnectingMsg:
		m.status = StatusConnecting
		m.address = msg.Address
		m.reason = ""
		return m, m.spinner.Tick

	case spinner.TickMsg:
		if m.status != StatusConnecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.status {
	case StatusConnecting:
		return fmt.Sprintf(
			"%s\n\n%s connecting to %s...\n\n%s",
			titleStyle.Render("Gyra"),
			m.spinner.View(),
			m.address,
			hintStyle.Render("Ctrl+C: quit"),
		)
	default:
		reason := m.reason
		if reason == "" {
			reason = genericReconnectText
		}
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("Gyra"),
			reasonStyle.Render(reason),
			hintStyle.Render("Ctrl+C: quit"),
		)
	}
}

// CurrentStatus reports the lobby's current state, for callers embedding Model
// in a larger program.
func (m Model) CurrentStatus() Status { return m.status }

// Reason reports the rendered disconnect reason, or "" while connecting.
func (m Model) Reason() string { return m.reason }
