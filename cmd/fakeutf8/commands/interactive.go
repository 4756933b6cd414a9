package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/fakeutf8/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(10)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveMode int

const (
	// modeWiden treats the input as a correct string.
	modeWiden interactiveMode = iota
	// modeRepair treats the input as mojibake.
	modeRepair
)

func (m interactiveMode) String() string {
	if m == modeRepair {
		return "repair"
	}
	return "widen"
}

type interactiveModel struct {
	err    error
	tc     *transcoder.Transcoder
	result string
	units  string
	hex    string
	latin1 string
	input  textinput.Model
	mode   interactiveMode
}

func newInteractiveModel(tc *transcoder.Transcoder) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type some text"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	m := &interactiveModel{tc: tc, input: ti}
	m.refresh()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.mode = (m.mode + 1) % 2
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh recomputes every view of the current input.
func (m *interactiveModel) refresh() {
	text := m.input.Value()
	m.err = nil
	m.result = ""

	var c transcoder.Carrier
	switch m.mode {
	case modeRepair:
		s, err := m.tc.RepairString(text)
		if err != nil {
			m.err = err
			m.units, m.hex, m.latin1 = "", "", ""
			return
		}
		m.result = s
		c = m.tc.WidenString(s)
	default:
		c = m.tc.WidenString(text)
		s, err := m.tc.Repair(c.Units())
		if err != nil {
			m.err = err
		} else {
			m.result = s.String()
		}
	}

	m.units = formatCarrier(c, formatUnits)
	m.hex = formatCarrier(c, formatHex)
	m.latin1 = formatCarrier(c, formatLatin1)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fake UTF-8"))
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("units", m.units)
	row("hex", m.hex)
	row("latin1", m.latin1)

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		label := "repaired"
		if m.mode == modeRepair {
			label = "result"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch widen/repair • esc quit"))

	return b.String()
}

func interactiveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Live widen and repair view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newInteractiveModel(o.tc),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}
