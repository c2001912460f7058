package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/doll-chores/internal/engine"
	"github.com/tatianab/doll-chores/internal/models"
)

type model struct {
	game     *engine.Game
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	busy     bool
	cursor   int
	status   string
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D787"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1C1C")).
			Background(lipgloss.Color("#FFA500")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	outcomeStyles = map[models.Outcome]lipgloss.Style{
		models.OutcomeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787")).Bold(true),
		models.OutcomePartial: lipgloss.NewStyle().Foreground(lipgloss.Color("#D7D787")),
		models.OutcomeFail:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F5F")),
	}
)

func NewModel(g *engine.Game) model {
	return model{
		game: g,
		keys: keys,
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type continuedMsg struct{}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Continue):
			m.busy = true
			m.status = ""
			return m, m.continueGame()

		case key.Matches(msg, m.keys.Back):
			m.game.Retreat()
			m.cursor = 0
			m.status = ""

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.selectAtCursor()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.72)
		if !m.ready {
			m.viewport = viewport.New(logWidth, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 4
		}
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case continuedMsg:
		m.busy = false
		m.cursor = 0
		m.refresh()
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.busy {
		return "\n  The night moves on... please wait.\n"
	}
	if !m.ready {
		return "\n  Lighting the stove...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.help.View(m.keys),
	)
}

// refresh re-renders the current step. While a continue is in flight the
// game belongs to that command and is left alone.
func (m *model) refresh() {
	if m.ready && !m.busy {
		m.viewport.SetContent(m.renderStep())
	}
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.72)
}

// listLen is the number of rows the cursor can move over on this step.
func (m model) listLen() int {
	switch m.game.CurrentStep().Key {
	case models.StepGetTasks:
		return len(m.game.NightlyTasks())
	case models.StepListItems, models.StepGiveDollItems:
		return len(m.game.AvailableItems())
	}
	return 0
}

func (m *model) selectAtCursor() {
	switch m.game.CurrentStep().Key {
	case models.StepGetTasks:
		tasks := m.game.NightlyTasks()
		if m.cursor < len(tasks) {
			m.game.SelectTask(tasks[m.cursor].ID)
		}
	case models.StepGiveDollItems:
		items := m.game.AvailableItems()
		if m.cursor >= len(items) {
			return
		}
		switch {
		case m.game.AssignmentLocked():
			m.status = "The doll has already been to work tonight."
		case !m.game.ToggleAssignment(items[m.cursor].ID):
			m.status = fmt.Sprintf("The doll cannot carry more than %d things.", m.game.MaxDollItems())
		default:
			m.status = ""
		}
	}
}

func (m model) renderStep() string {
	step := m.game.CurrentStep()

	var b strings.Builder
	b.WriteString(titleStyle.Render(step.Label) + "\n\n")
	b.WriteString(narrativeStyle.Width(m.logWidth()).Render(step.Narrative) + "\n\n")

	switch step.Key {
	case models.StepGetTasks:
		m.renderTasks(&b)
	case models.StepListItems:
		m.renderItems(&b, false)
	case models.StepGiveDollItems:
		m.renderItems(&b, true)
	case models.StepDollAttemptsChores:
		m.renderResults(&b)
	case models.StepWitchGivesBoons:
		if recap := m.game.Recap(); recap != "" {
			b.WriteString(lipgloss.NewStyle().Width(m.logWidth()).Render(recap) + "\n\n")
		}
		fmt.Fprintf(&b, "+%d points tonight.\n\n", m.game.LastDelta())
	case models.StepWin:
		fmt.Fprintf(&b, "You won on night %d with %d points.\n\n", m.game.Night(), m.game.TotalPoints())
	}

	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status) + "\n\n")
	}
	b.WriteString(buttonStyle.Render(step.ContinueText))
	return b.String()
}

func (m model) renderTasks(b *strings.Builder) {
	selected, hasSelection := m.game.SelectedTask()
	for i, t := range m.game.NightlyTasks() {
		line := fmt.Sprintf("%s (difficulty %d)", t.Name, t.EffectiveDifficulty())
		b.WriteString(m.row(i, line) + "\n")
		if hasSelection && t.ID == selected {
			helpers := m.game.ItemsForSelectedTask()
			if len(helpers) == 0 {
				b.WriteString(mutedStyle.Render("    nothing in the hut helps with this") + "\n")
			}
			for _, it := range helpers {
				b.WriteString(highlightStyle.Render("    + "+it.Name) + "\n")
			}
		}
	}
	b.WriteString("\n")
}

func (m model) renderItems(b *strings.Builder, assign bool) {
	tonight := map[int]bool{}
	for _, t := range m.game.NightlyTasks() {
		tonight[t.ID] = true
	}

	for i, it := range m.game.AvailableItems() {
		helps := 0
		for _, t := range m.game.Catalog().TasksForItem(it.ID) {
			if tonight[t.ID] {
				helps++
			}
		}

		line := fmt.Sprintf("%s (helps with %d of tonight's chores)", it.Name, helps)
		if assign {
			box := "[ ]"
			if m.game.IsAssigned(it.ID) {
				box = "[x]"
			}
			line = box + " " + line
		}
		b.WriteString(m.row(i, line) + "\n")
	}

	if assign {
		fmt.Fprintf(b, "\nThe doll carries %d of %d.\n", len(m.game.DollItems()), m.game.MaxDollItems())
		highlighted := m.game.HighlightedTasks()
		if len(highlighted) > 0 {
			b.WriteString("\nThe doll is ready for:\n")
			for _, t := range highlighted {
				b.WriteString(highlightStyle.Render("  * "+t.Name) + "\n")
			}
		}
	}
	b.WriteString("\n")
}

func (m model) renderResults(b *strings.Builder) {
	results, ok := m.game.LastResults()
	if !ok {
		b.WriteString(mutedStyle.Render("Nothing was attempted tonight.") + "\n\n")
		return
	}
	for _, r := range results {
		name := fmt.Sprintf("task %d", r.TaskID)
		if t, ok := m.game.Catalog().Task(r.TaskID); ok {
			name = t.Name
		}
		style := outcomeStyles[r.Outcome]
		fmt.Fprintf(b, "%s\n  rolled %d + %d = %d vs %d: %s\n  %s\n",
			name, r.Roll, r.Bonus, r.Total, r.Difficulty,
			style.Render(strings.ToUpper(string(r.Outcome))),
			mutedStyle.Render(r.Text))
	}
	b.WriteString("\n")
}

func (m model) row(i int, line string) string {
	if i == m.cursor {
		return cursorStyle.Render("> " + line)
	}
	return "  " + line
}

func (m model) renderState() string {
	g := m.game

	night := titleStyle.Render("NIGHT") + fmt.Sprintf("\n%d\n\n", g.Night())

	progress := titleStyle.Render("PROGRESS") + "\n" +
		progressBar(g.Progress(), 20) +
		fmt.Sprintf("\n%.2f%% (%d/%d)\n\n", g.Progress(), g.TotalPoints(), g.VictoryPoints())

	doll := titleStyle.Render("DOLL") + fmt.Sprintf(" %d/%d\n", len(g.DollItems()), g.MaxDollItems())
	if len(g.DollItems()) == 0 {
		doll += "(empty)\n"
	}
	for _, it := range g.DollItems() {
		doll += "- " + it.Name + "\n"
	}
	doll += "\n"

	phases := titleStyle.Render("PHASE") + "\n"
	for i, s := range g.Steps() {
		if s.Terminal && !g.Victory() {
			continue
		}
		if i == g.StepIndex() {
			phases += highlightStyle.Render("> "+s.Label) + "\n"
		} else {
			phases += mutedStyle.Render("  "+s.Label) + "\n"
		}
	}

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(night + progress + doll + phases)
}

func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return highlightStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

func (m model) continueGame() tea.Cmd {
	return func() tea.Msg {
		m.game.Continue(context.Background())
		return continuedMsg{}
	}
}

// Run starts the full-screen program for g.
func Run(g *engine.Game) error {
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
