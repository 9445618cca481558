//go:build !gui

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cwhuang/recite/internal/narrator"
	"github.com/cwhuang/recite/internal/session"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	englishStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	chineseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7AF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	autoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	lookupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFFF")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

type model struct {
	*app
	input        textinput.Model
	searching    bool
	lookupResult string
	width        int
	height       int
	quitting     bool
}

type narratorMsg narrator.Event

func waitForNarrator(events <-chan narrator.Event) tea.Cmd {
	return func() tea.Msg {
		return narratorMsg(<-events)
	}
}

func newModel(a *app) model {
	input := textinput.New()
	input.Placeholder = "look up a word"
	input.CharLimit = 64
	input.Width = 30

	return model{
		app:    a,
		input:  input,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd {
	return waitForNarrator(m.nar.Events())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case narratorMsg:
		// Session state already moved; just keep listening.
		return m, waitForNarrator(m.nar.Events())
	}

	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "right":
		m.next()
		return m, nil

	case "e":
		m.readEnglish()
		return m, nil

	case "c":
		m.readChinese()
		return m, nil

	case "a", " ":
		m.toggleAuto()
		return m, nil

	case "+", "=", "up":
		m.sess.AdjustRate(session.RateStep)
		return m, nil

	case "-", "down":
		m.sess.AdjustRate(-session.RateStep)
		return m, nil

	case "v":
		m.catalog.CycleEnglish()
		m.syncVoices()
		return m, nil

	case "V":
		m.catalog.CycleChinese()
		m.syncVoices()
		return m, nil

	case "d":
		m.lookupResult = m.lookupCurrent()
		return m, nil

	case "/":
		m.searching = true
		m.lookupResult = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "q", "Q", "ctrl+c":
		m.nar.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.lookupResult = m.lookup(m.input.Value())
		m.searching = false
		m.input.Blur()
		return m, nil

	case "esc":
		m.searching = false
		m.lookupResult = ""
		m.input.Blur()
		return m, nil

	case "ctrl+c":
		m.nar.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	if m.store.Len() == 0 {
		return "No vocabulary entries.\n\nPress Q to quit."
	}

	rec := m.current()

	status := statusStyle.Render(statusLine(m))

	card := englishStyle.Render(rec.English) + "\n\n" + chineseStyle.Render(rec.Chinese)

	lookup := ""
	if m.searching {
		lookup = lookupStyle.Render("lookup: " + m.input.View())
	} else if m.lookupResult != "" {
		lookup = lookupStyle.Render(m.lookupResult)
	}

	controls := controlsStyle.Render(controlsLine(m))

	// Reserve 3 lines: status at top, lookup and controls at bottom.
	avail := m.height - 3
	if avail < 1 {
		avail = 1
	}
	vPad := avail / 2

	var sb strings.Builder
	sb.WriteString(status)
	sb.WriteString("\n")
	for range vPad {
		sb.WriteString("\n")
	}
	sb.WriteString(centerBlock(card, m.width))
	for range avail - vPad {
		sb.WriteString("\n")
	}
	sb.WriteString(lookup)
	sb.WriteString("\n")
	sb.WriteString(controls)

	return sb.String()
}

func statusLine(m model) string {
	en, zh := m.sess.Voices()
	line := fmt.Sprintf("Card %d/%d | %.2fx | EN: %s | ZH: %s",
		m.sess.Index()+1,
		m.store.Len(),
		m.sess.Rate(),
		m.voiceName(en),
		m.voiceName(zh),
	)
	if m.sess.Auto() {
		line += autoStyle.Render(" [AUTO]")
	}
	if !m.engine.Available() {
		line += warnStyle.Render(" [no speech engine]")
	}
	return line
}

func controlsLine(m model) string {
	if !m.engine.Available() {
		return "N: next  D: define  /: lookup  Q: quit  (speech controls disabled)"
	}
	return "N: next  E: English  C: Chinese  A: auto  ↑/↓: rate  V/shift-V: voices  D: define  /: lookup  Q: quit"
}

// centerBlock centers each line of a multi-line block horizontally.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}

func main() {
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Recite - Terminal Vocabulary Flashcards\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  recite [options] [vocab file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  recite                    Drill the built-in sample list\n")
		fmt.Fprintf(os.Stderr, "  recite words.csv          Drill a CSV word list\n")
		fmt.Fprintf(os.Stderr, "  recite words.tsv          Drill a TSV word list\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  N        Next card\n")
		fmt.Fprintf(os.Stderr, "  E / C    Read the English / Chinese side aloud\n")
		fmt.Fprintf(os.Stderr, "  A        Toggle auto-advance narration\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Adjust reading rate\n")
		fmt.Fprintf(os.Stderr, "  V        Cycle English voice (shift-V: Chinese)\n")
		fmt.Fprintf(os.Stderr, "  D        Look up the current word in the dictionary\n")
		fmt.Fprintf(os.Stderr, "  /        Dictionary lookup\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("recite %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	var vocabPath string
	if flag.NArg() > 0 {
		vocabPath = flag.Arg(0)
	}

	a, err := newApp(vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
