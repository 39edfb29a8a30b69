package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/synteny/pkg/config"
	synio "github.com/matzehuels/synteny/pkg/io"
	"github.com/matzehuels/synteny/pkg/layout"
	"github.com/matzehuels/synteny/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var save string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "explore [data.json]",
		Short: "Browse chromosomes and toggle display filters interactively",
		Long: `Browse chromosomes and toggle display filters interactively.

Each keystroke recomputes the layout and shows the coordinates of every
chromosome. Use --save to write the final filters for later runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DataPath = args[0]
			return c.runExplore(opts, save)
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "write the final filters to this JSON file on exit")
	loadFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runExplore(opts pipeline.Options, save string) error {
	s, err := pipeline.Load(opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.DataPath, err)
	}
	m, err := NewExploreModel(s)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	fm, ok := final.(ExploreModel)
	if !ok || save == "" {
		return nil
	}
	if err := synio.ExportFilters(fm.Snapshot.Filters, save); err != nil {
		return fmt.Errorf("save filters: %w", err)
	}
	printSuccess("Saved filters")
	printFile(save)
	return nil
}

// =============================================================================
// ExploreModel - Interactive chromosome browser
// =============================================================================

// ExploreModel is the bubbletea model of the explore command. It owns a
// private copy of the snapshot filters and recomputes the layout after
// every change.
type ExploreModel struct {
	Snapshot layout.Snapshot
	IDs      []string
	Links    map[string]int
	Result   layout.Result
	Err      error

	Cursor int
	Height int
	Offset int
}

// NewExploreModel creates an explore model over every chromosome of s,
// listed in filter order.
func NewExploreModel(s layout.Snapshot) (ExploreModel, error) {
	s.Filters = s.Filters.Clone()
	s.Config = s.Config.Clone()

	ids := slices.Clone(s.Filters.Karyo.Order)
	for _, id := range s.Data.ChromosomeIDs() {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	links := make(map[string]int, len(ids))
	for _, id := range ids {
		l, err := layout.LinksOfKaryo(s.Data, id)
		if err != nil {
			return ExploreModel{}, err
		}
		links[id] = len(l)
	}

	m := ExploreModel{Snapshot: s, IDs: ids, Links: links, Height: 15}
	m.recompute()
	return m, nil
}

func (m *ExploreModel) recompute() {
	m.Result, m.Err = pipeline.Compute(m.Snapshot)
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.IDs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space":
			if len(m.IDs) > 0 {
				m.Err = m.Snapshot.Filters.ToggleReverse(m.IDs[m.Cursor])
				if m.Err == nil {
					m.recompute()
				}
			}
		case "v":
			if len(m.IDs) > 0 {
				m.Err = m.Snapshot.Filters.ToggleVisible(m.IDs[m.Cursor])
				if m.Err == nil {
					m.recompute()
				}
			}
		case "l":
			if m.Snapshot.Config.Layout == config.LayoutLinear {
				m.Snapshot.Config.Layout = config.LayoutCircular
			} else {
				m.Snapshot.Config.Layout = config.LayoutLinear
			}
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chromosomes"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(m.Snapshot.Config.Layout))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space reverse  v visible  l layout  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.IDs))
	coords := m.coords()

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		id := m.IDs[i]
		f, _ := m.Snapshot.Filters.Chromosome(id)
		c := m.Snapshot.Data.Chromosomes[id]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		where, ok := coords[id]
		if !ok {
			where = "—"
		}
		rows = append(rows, []string{
			cursor, id, fmt.Sprint(c.GenomeID), fmt.Sprintf("%.0f", c.Length),
			check(f.Reverse), check(f.Visible), fmt.Sprint(m.Links[id]), where,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Karyo", "Genome", "Length", "Rev", "Visible", "Links", "Coordinates").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.IDs) {
				return lipgloss.NewStyle()
			}
			if idx == m.Cursor {
				return listSelectedStyle
			}
			if _, drawn := coords[m.IDs[idx]]; !drawn {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	karyos, links := pipeline.Counts(m.Result)
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d karyos · %d links", m.Cursor+1, len(m.IDs), karyos, links)))
	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(listErrorStyle.Render("  " + m.Err.Error()))
	}

	return b.String()
}

// coords formats the layout position of every drawn chromosome.
func (m ExploreModel) coords() map[string]string {
	out := map[string]string{}
	switch {
	case m.Result.Linear != nil:
		for _, k := range m.Result.Linear.Karyos {
			out[k.Karyo] = fmt.Sprintf("x=%.1f y=%.1f w=%.1f", k.X, k.Y, k.Width)
		}
	case m.Result.Circular != nil:
		for _, a := range m.Result.Circular.Karyos {
			out[a.Karyo] = fmt.Sprintf("%.1f°→%.1f°", degrees(a.StartAngle), degrees(a.EndAngle))
		}
	}
	return out
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func check(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
