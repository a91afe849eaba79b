package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lava-tower/internal/registry"
	"github.com/vovakirdan/lava-tower/internal/storage"
)

const (
	statsPanelMinWidth = 84  // Below this the stats go under the table
	statsPanelWidth    = 26
	maxScores          = 100 // Rows loaded per variant
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Prev    key.Binding
	Escapes key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Escapes, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Variant, k.Prev, k.Escapes},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Variant: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tower")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev tower")),
		Escapes: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "escapes only")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each tower variant.
type ScoreboardModel struct {
	variants    []registry.GameInfo
	current     int
	store       *storage.Store
	runs        []storage.ScoreEntry // As loaded, best first
	stats       *storage.GameStats
	totals      *storage.GameStats // Every variant together
	escapesOnly bool
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 9},
		{Title: "Time", Width: 6},
		{Title: "Played", Width: 13},
	}

	height := m.height - 9
	if !m.wide() {
		height -= 8 // Stats panel sits below
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("124")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current variant's runs and stats from the store.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.totals = nil, nil, nil
	if m.store != nil {
		if totals, err := m.store.TotalStats(); err == nil {
			m.totals = totals
		}
	}
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopScores(id, maxScores); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// visibleRuns applies the escapes-only filter.
func (m *ScoreboardModel) visibleRuns() []storage.ScoreEntry {
	if !m.escapesOnly {
		return m.runs
	}
	var won []storage.ScoreEntry
	for _, r := range m.runs {
		if r.Outcome == storage.OutcomeWon {
			won = append(won, r)
		}
	}
	return won
}

func (m *ScoreboardModel) refreshRows() {
	runs := m.visibleRuns()
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "burned"
		if r.Outcome == storage.OutcomeWon {
			result = "escaped"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			result,
			formatTicks(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchVariant(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.variants)) % len(m.variants)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Variant):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
			return m, nil
		case key.Matches(msg, m.keys.Escapes):
			m.escapesOnly = !m.escapesOnly
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HALL OF ESCAPES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	board := panelStyle.Render(m.renderRuns())
	if m.wide() {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, board, " ", m.renderStats()), m.width))
	} else {
		b.WriteString(centerText(lipgloss.JoinVertical(lipgloss.Center, board, m.renderStats()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(v.Title)
		} else {
			tabs[i] = tabStyle.Render(v.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if m.escapesOnly {
		line += "  " + statLabelStyle.Render("(escapes only)")
	}
	return line
}

func (m ScoreboardModel) renderRuns() string {
	if len(m.visibleRuns()) > 0 {
		return m.table.View()
	}
	if m.escapesOnly && len(m.runs) > 0 {
		return emptyStyle.Render("Nobody has escaped this tower yet.")
	}
	return emptyStyle.Render("No runs recorded yet.\nClimb the tower to set a high score!")
}

func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil {
		st = &storage.GameStats{}
	}

	rate := "-"
	if st.GamesCount > 0 {
		rate = fmt.Sprintf("%d%%", st.Wins*100/st.GamesCount)
	}
	fastest := "-"
	if st.Wins > 0 {
		fastest = formatTicks(st.BestTicks)
	}
	last := "-"
	if !st.LastPlayed.IsZero() {
		last = st.LastPlayed.Format("Jan 02 15:04")
	}

	lines := []struct{ label, value string }{
		{"Runs", fmt.Sprintf("%d", st.GamesCount)},
		{"Escapes", fmt.Sprintf("%d", st.Wins)},
		{"Escape rate", rate},
		{"Best score", fmt.Sprintf("%d", st.HighScore)},
		{"Average", fmt.Sprintf("%.1f", st.AvgScore)},
		{"Fastest escape", fastest},
		{"Last run", last},
	}
	if tt := m.totals; tt != nil && tt.GamesCount > st.GamesCount {
		lines = append(lines, struct{ label, value string }{
			"All towers", fmt.Sprintf("%d/%d out", tt.Wins, tt.GamesCount),
		})
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		gap := max(statsPanelWidth-4-len(l.label)-len(l.value), 1)
		b.WriteString(statLabelStyle.Render(l.label) + strings.Repeat(" ", gap) + statValueStyle.Render(l.value))
	}
	return panelStyle.Width(statsPanelWidth).Render(b.String())
}

// formatTicks renders a run length at 60 ticks per second as m:ss.
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
