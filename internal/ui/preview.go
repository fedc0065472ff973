package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
	"github.com/unkn0wn-root/tinct/internal/theme"
	"github.com/unkn0wn-root/tinct/internal/watcher"
)

const listWidth = 28

var previewProfiles = []termenv.Profile{
	termenv.TrueColor,
	termenv.ANSI256,
	termenv.ANSI,
	termenv.Ascii,
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Profile key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous theme"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next theme"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle color profile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the catalog preview: a theme list on the left, resolved swatches
// on the right. Cycling the profile rebuilds the whole catalog against the
// new capabilities and swaps it in, the same way an application hot-reloads
// a theme.
type Model struct {
	dirs     []string
	catalog  theme.Catalog
	caps     colorspec.Capabilities
	cursor   int
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	loadErr  error
	watch    *watcher.Watcher
}

func NewModel(dirs []string, catalog theme.Catalog, caps colorspec.Capabilities) Model {
	return Model{
		dirs:    dirs,
		catalog: catalog,
		caps:    caps,
		keys:    defaultKeyMap(),
	}
}

// WithWatcher attaches a directory watcher; theme file edits then reload
// the catalog live.
func (m Model) WithWatcher(w *watcher.Watcher) Model {
	m.watch = w
	return m
}

type themesChangedMsg struct{}

func (m Model) waitForChange() tea.Msg {
	if _, ok := <-m.watch.Events(); ok {
		return themesChangedMsg{}
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	if m.watch != nil {
		return m.waitForChange
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := max(20, msg.Width-listWidth-3)
		contentHeight := max(5, msg.Height-4)
		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.swatchContent())
		return m, nil

	case themesChangedMsg:
		m = m.reload(m.caps)
		if m.ready {
			m.viewport.SetContent(m.swatchContent())
		}
		return m, m.waitForChange

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(m.swatchContent())
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.catalog.All())-1 {
				m.cursor++
				m.viewport.SetContent(m.swatchContent())
			}
			return m, nil
		case key.Matches(msg, m.keys.Profile):
			m = m.cycleProfile()
			m.viewport.SetContent(m.swatchContent())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) cycleProfile() Model {
	next := 0
	for i, p := range previewProfiles {
		if p == m.caps.Profile {
			next = (i + 1) % len(previewProfiles)
			break
		}
	}
	return m.reload(colorspec.ForProfile(previewProfiles[next]))
}

// reload rebuilds the catalog against caps and swaps it in wholesale;
// resolved themes are never mutated in place. The cursor follows the
// selected key across the swap when it survives.
func (m Model) reload(caps colorspec.Capabilities) Model {
	selected, hadSelection := m.Selected()
	catalog, err := theme.LoadCatalog(m.dirs, caps)
	if err != nil && len(catalog.Keys()) == 0 {
		// Keep the old catalog when the reload produced nothing at all.
		m.loadErr = err
		return m
	}
	m.loadErr = err
	m.caps = caps
	m.catalog = catalog
	if m.cursor >= len(catalog.All()) {
		m.cursor = len(catalog.All()) - 1
	}
	if hadSelection {
		m = m.WithSelected(selected.Key)
	}
	return m
}

// WithSelected moves the cursor onto the given theme key, if present.
func (m Model) WithSelected(key string) Model {
	for i, def := range m.catalog.All() {
		if def.Key == key {
			m.cursor = i
			break
		}
	}
	return m
}

// Selected returns the definition under the cursor.
func (m Model) Selected() (theme.Definition, bool) {
	defs := m.catalog.All()
	if m.cursor < 0 || m.cursor >= len(defs) {
		return theme.Definition{}, false
	}
	return defs[m.cursor], true
}

func (m Model) swatchContent() string {
	def, ok := m.Selected()
	if !ok {
		return "no themes loaded"
	}
	return Swatches(def)
}

func (m Model) View() string {
	if !m.ready {
		return "loading preview..."
	}

	listStyle := lipgloss.NewStyle().Width(listWidth)
	cursorStyle := lipgloss.NewStyle().Bold(true).Reverse(true)

	var list strings.Builder
	for i, def := range m.catalog.All() {
		label := def.DisplayName
		if label == "" {
			label = def.Key
		}
		label = runewidth.Truncate(label, listWidth-2, "…")
		line := "  " + label
		if i == m.cursor {
			line = cursorStyle.Render("> " + label)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	footer := fmt.Sprintf(
		"profile: %s   ↑/↓ theme · p profile · q quit",
		colorspec.ProfileName(m.caps.Profile),
	)
	if m.loadErr != nil {
		footer = "reload: " + m.loadErr.Error()
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(list.String()),
		" │ ",
		m.viewport.View(),
	)
	return body + "\n" + footer
}

// Swatches renders one resolved theme as labelled color rows. It is used by
// both the interactive preview and the -swatch dump mode.
func Swatches(def theme.Definition) string {
	styles := theme.BuildStyles(def.Theme)
	title := def.DisplayName
	if title == "" {
		title = def.Key
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	if def.Metadata.Author != "" {
		b.WriteString("  by " + def.Metadata.Author)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("borders: %s   shadow: %v\n\n", def.Theme.Borders, def.Theme.Shadow))

	labelWidth := 0
	for _, slot := range theme.ColorSlots() {
		if w := runewidth.StringWidth(slot); w > labelWidth {
			labelWidth = w
		}
	}
	for _, slot := range theme.ColorSlots() {
		spec, _ := def.Theme.Color(slot)
		block := lipgloss.NewStyle().
			Background(spec.Lipgloss()).
			Foreground(theme.ReadableForeground(spec)).
			Render("  " + spec.String() + "  ")
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(slot))
		b.WriteString(slot + pad + "  " + block + "\n")
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
