package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontroute/pkg/catalog"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginLeft(2)
)

// browseCommand creates the browse command that opens the interactive viewer.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse fonts and their fallback chains interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			if cat.Len() == 0 {
				printInfo("No fonts in %s", args[0])
				return nil
			}
			_, err = tea.NewProgram(NewBrowseModel(cat), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Interactive font and fallback viewer
// =============================================================================

// BrowseModel is the bubbletea model for browsing a catalog. The cursor
// selects a font, the tag index selects which tag's fallbacks are shown.
type BrowseModel struct {
	Catalog  *catalog.Catalog
	Fonts    []catalog.Font
	Tags     []string
	Cursor   int
	TagIndex int
	Height   int
	Offset   int
}

// NewBrowseModel creates a new browse model for cat.
func NewBrowseModel(cat *catalog.Catalog) BrowseModel {
	return BrowseModel{
		Catalog: cat,
		Fonts:   cat.Fonts(),
		Tags:    cat.TagNames(),
		Height:  15,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Fonts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab", "right", "l":
			if len(m.Tags) > 0 {
				m.TagIndex = (m.TagIndex + 1) % len(m.Tags)
			}
		case "shift+tab", "left", "h":
			if len(m.Tags) > 0 {
				m.TagIndex = (m.TagIndex - 1 + len(m.Tags)) % len(m.Tags)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// Tag returns the selected tag, or "" for a catalog without tags.
func (m BrowseModel) Tag() string {
	if len(m.Tags) == 0 {
		return ""
	}
	return m.Tags[m.TagIndex]
}

// Font returns the font under the cursor.
func (m BrowseModel) Font() catalog.Font {
	if len(m.Fonts) == 0 {
		return catalog.Font{}
	}
	return m.Fonts[m.Cursor]
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Font Fallbacks"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(m.Tag()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ font  ⇥ tag  q quit"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.fontTable(), m.chainPanel()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  tag %d/%d", m.Cursor+1, len(m.Fonts), m.TagIndex+1, len(m.Tags))))

	return b.String()
}

// fontTable renders the visible window of fonts. Fonts that carry the
// selected tag are highlighted.
func (m BrowseModel) fontTable() string {
	end := min(m.Offset+m.Height, len(m.Fonts))
	tag := m.Tag()

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := m.Fonts[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		attached := m.Catalog.AttachedTags(f.Name)
		rows = append(rows, []string{cursor, f.Name, strings.Join(attached, " ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Font", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Fonts) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				base = base.Foreground(colorGray)
			}
			hasTag := slices.Contains(m.Catalog.AttachedTags(m.Fonts[idx].Name), tag)
			switch {
			case idx == m.Cursor && hasTag:
				return base.Foreground(colorGreen).Bold(true)
			case idx == m.Cursor:
				return base.Bold(true)
			case hasTag:
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorDim)
		})

	return t.Render()
}

// chainPanel shows the direct fallbacks and the full chain of the selected
// font for the selected tag.
func (m BrowseModel) chainPanel() string {
	font := m.Font()
	tag := m.Tag()

	var b strings.Builder
	b.WriteString(listSelectedStyle.Render(font.Name))
	b.WriteString(listDimStyle.Render(" · " + tag))
	b.WriteString("\n\n")

	direct, _ := m.Catalog.Fallbacks(font.Name, tag, 0)
	chain, _ := m.Catalog.Chain(font.Name, tag)

	if len(direct) == 0 {
		b.WriteString(listDimStyle.Render("no fallbacks"))
		return panelStyle.Render(b.String())
	}

	b.WriteString(StyleDim.Render("direct"))
	b.WriteString("\n")
	for i, name := range direct {
		b.WriteString(listNormalStyle.Render(fmt.Sprintf("%2d. %s", i+1, name)))
		b.WriteString("\n")
	}

	if len(chain) > len(direct) {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("chain"))
		b.WriteString("\n")
		for _, name := range chain {
			style := listDimStyle
			if slices.Contains(direct, name) {
				style = listNormalStyle
			}
			b.WriteString(style.Render(iconArrow + " " + name))
			b.WriteString("\n")
		}
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
