package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxel51/fiftyone-links/internal/links"
)

// BrowserTitleStyle is for the browser list title bar
var BrowserTitleStyle = lipgloss.NewStyle().
	Foreground(TextColor).
	Background(PrimaryColor).
	Bold(true).
	Padding(0, 1)

// linkItem wraps an Entry for use with bubbles/list
type linkItem struct {
	entry links.Entry
}

// FilterValue matches on key, label, and URL
func (i linkItem) FilterValue() string {
	return i.entry.Key + " " + i.entry.Title() + " " + i.entry.URL
}

// Title returns the key for list display
func (i linkItem) Title() string { return i.entry.Key }

// Description returns the URL for list display
func (i linkItem) Description() string { return i.entry.URL }

// browserKeyMap defines key bindings for the browser
type browserKeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Quit}}
}

// BrowserModel is a filterable list of links. Choosing an entry ends the
// program and leaves it in Selected.
type BrowserModel struct {
	List     list.Model
	Keys     browserKeyMap
	Selected *links.Entry
	Quitting bool

	Width  int
	Height int
}

// NewBrowserModel creates a browser over entries
func NewBrowserModel(entries []links.Entry) BrowserModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = linkItem{entry: e}
	}

	keys := browserKeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "print URL"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(PrimaryColor).
		BorderForeground(PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(LinkColor).
		BorderForeground(PrimaryColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = "FiftyOne documentation links"
	l.Styles.Title = BrowserTitleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = keys.ShortHelp
	l.AdditionalFullHelpKeys = keys.ShortHelp

	return BrowserModel{
		List: l,
		Keys: keys,
	}
}

// Init implements tea.Model
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// While the filter prompt is open, keys belong to the filter input
		if m.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.Keys.Select):
			if item, ok := m.List.SelectedItem().(linkItem); ok {
				e := item.entry
				m.Selected = &e
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m BrowserModel) View() string {
	if m.Selected != nil || m.Quitting {
		return ""
	}
	return m.List.View()
}

// RunBrowser runs the interactive browser on the alternate screen and
// returns the chosen entry, or nil if the user quit without choosing.
func RunBrowser(entries []links.Entry, in io.Reader, out io.Writer) (*links.Entry, error) {
	p := tea.NewProgram(
		NewBrowserModel(entries),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("browser failed: %w", err)
	}

	m, ok := final.(BrowserModel)
	if !ok {
		return nil, fmt.Errorf("browser returned unexpected model %T", final)
	}
	return m.Selected, nil
}
