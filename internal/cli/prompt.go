package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flightgraph/pkg/errors"
)

var (
	promptLabelStyle = lipgloss.NewStyle().Foreground(colorWhite)
	promptHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// countsModel - Interactive airport and flight count entry
// =============================================================================

const (
	fieldAirports = iota
	fieldFlights
)

// countsModel asks for the number of airports and the number of flights.
// Enter moves to the next field; enter on the last field submits. Both
// fields start empty and an empty field is not an integer.
type countsModel struct {
	inputs    [2]textinput.Model
	focus     int
	submitted bool
	cancelled bool
}

func newCountsModel() countsModel {
	var m countsModel
	labels := [2]string{"number of airports", "number of flights"}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = promptLabelStyle.Render(labels[i]+": ")
		in.CharLimit = 12
		m.inputs[i] = in
	}
	m.inputs[fieldAirports].Focus()
	return m
}

func (m countsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m countsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter, tea.KeyCtrlJ, tea.KeyTab:
			if m.focus == fieldFlights {
				if key.Type == tea.KeyTab {
					return m, nil
				}
				m.submitted = true
				return m, tea.Quit
			}
			m.inputs[m.focus].Blur()
			m.focus++
			return m, m.inputs[m.focus].Focus()
		case tea.KeyShiftTab, tea.KeyUp:
			if m.focus > fieldAirports {
				m.inputs[m.focus].Blur()
				m.focus--
				return m, m.inputs[m.focus].Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m countsModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Flight network"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(promptHelpStyle.Render("⏎ next/submit  esc quit"))
	b.WriteString("\n")
	return b.String()
}

// values returns the raw text of both fields.
func (m countsModel) values() (airports, flights string) {
	return m.inputs[fieldAirports].Value(), m.inputs[fieldFlights].Value()
}

// =============================================================================
// Prompting
// =============================================================================

// readCounts asks for the airport and flight counts on c.In. A terminal
// gets the interactive prompt; anything else is read as two lines. ok is
// false when a redirected stdin is empty, leaving the defaults in place.
// Anything that is not an integer yields an ErrCodeInvalidInput error
// carrying invalidCountsMessage.
func (c *CLI) readCounts(ctx context.Context) (airports, flights int, ok bool, err error) {
	if c.interactive() {
		airports, flights, err = c.promptCounts(ctx)
		return airports, flights, err == nil, err
	}
	return c.scanCounts(ctx)
}

// promptCounts runs the interactive prompt and returns the entered counts.
// Quitting the prompt returns context.Canceled.
func (c *CLI) promptCounts(ctx context.Context) (int, int, error) {
	p := tea.NewProgram(newCountsModel(),
		tea.WithContext(ctx),
		tea.WithInput(c.In),
		tea.WithOutput(c.Out),
	)
	final, err := p.Run()
	if err != nil {
		return 0, 0, fmt.Errorf("prompt: %w", err)
	}
	m := final.(countsModel)
	if m.cancelled {
		return 0, 0, context.Canceled
	}
	return parseCounts(m.values())
}

// scanCounts reads the airport count and the flight count as the first two
// lines of c.In. A missing second line counts as an empty answer.
func (c *CLI) scanCounts(ctx context.Context) (int, int, bool, error) {
	type scanned struct {
		lines []string
		err   error
	}
	done := make(chan scanned, 1)
	go func() {
		sc := bufio.NewScanner(c.In)
		var lines []string
		for len(lines) < 2 && sc.Scan() {
			lines = append(lines, sc.Text())
		}
		done <- scanned{lines: lines, err: sc.Err()}
	}()

	var r scanned
	select {
	case <-ctx.Done():
		return 0, 0, false, ctx.Err()
	case r = <-done:
	}
	if r.err != nil {
		return 0, 0, false, fmt.Errorf("read counts: %w", r.err)
	}
	if len(r.lines) == 0 {
		c.Logger.Debug("no counts on stdin, using defaults")
		return 0, 0, false, nil
	}
	r.lines = append(r.lines, "")
	airports, flights, err := parseCounts(r.lines[0], r.lines[1])
	return airports, flights, err == nil, err
}

// parseCounts converts the prompt's text into counts.
func parseCounts(airports, flights string) (int, int, error) {
	a, errA := errors.ParseCount("airports", airports)
	f, errF := errors.ParseCount("flights", flights)
	if errA != nil || errF != nil {
		cause := errA
		if cause == nil {
			cause = errF
		}
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, cause, invalidCountsMessage)
	}
	return a, f, nil
}

// interactive reports whether the count prompt may run.
func (c *CLI) interactive() bool {
	if c.Interactive != nil {
		return *c.Interactive
	}
	f, ok := c.In.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
