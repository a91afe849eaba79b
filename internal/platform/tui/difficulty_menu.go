package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	Preset config.DifficultyPreset
	Label  string
	Hint   string
}

// difficultyOptions in display order. The empty preset keeps the loaded
// configuration untouched.
var difficultyOptions = []difficultyOption{
	{"", "Default", "as configured"},
	{config.DifficultyEasy, "Easy", "5 lives, strong slow-lava"},
	{config.DifficultyNormal, "Normal", "lava starts warmer"},
	{config.DifficultyHard, "Hard", "2 lives, hot start"},
	{config.DifficultyFixed, "Fixed", "no heat progression"},
}

// DifficultyModel lets users choose a difficulty preset before a game.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty picker for the given game title.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := difficultyOptions[m.cursor].Preset
		m.selection = &preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting || m.back || m.selection != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		label := fmt.Sprintf("%-8s", opt.Label)
		if i == m.cursor {
			cursor = "> "
			label = menuItemStyle.Render(label)
		}
		line := cursor + label + menuHintStyle.Render(" "+opt.Hint)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the picker. It returns nil when the user
// backed out or quit.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	model := NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
