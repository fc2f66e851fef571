package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive face browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse the faces of a mesh interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshio.Import(args[0])
			if err != nil {
				printError("Failed to load %s", args[0])
				return err
			}

			model := NewFaceListModel(m)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("run face browser: %w", err)
			}

			if fm, ok := final.(FaceListModel); ok && fm.Selected != nil {
				printFaceDetail(*fm.Selected)
			}
			return nil
		},
	}
}

// =============================================================================
// FaceListModel - Interactive face browsing
// =============================================================================

// FaceListModel is the bubbletea model for browsing mesh faces.
type FaceListModel struct {
	Faces    []mesh.FaceView[geom.Point]
	Selected *mesh.FaceView[geom.Point]
	Cursor   int
	Height   int
	Offset   int
	total    int
}

// NewFaceListModel creates a face browser over the mesh's faces.
func NewFaceListModel(m *pipeline.Mesh) FaceListModel {
	return FaceListModel{
		Faces:  m.Faces(),
		Cursor: 0,
		Height: 15,
		Offset: 0,
		total:  m.FaceCount(),
	}
}

func (m FaceListModel) Init() tea.Cmd {
	return nil
}

func (m FaceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Faces)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			face := m.Faces[m.Cursor]
			m.Selected = &face
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FaceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Faces"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Faces) {
		end = len(m.Faces)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := m.Faces[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		boundary := ""
		if f.IsBoundary() {
			boundary = "✓"
		}

		rows = append(rows, []string{
			cursor,
			f.Key().String(),
			fmt.Sprintf("%d", f.Arity()),
			formatVertexList(f.Vertices()),
			formatCentroid(f),
			boundary,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Face", "Sides", "Vertices", "Centroid", "Boundary").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.total)))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func printFaceDetail(f mesh.FaceView[geom.Point]) {
	printKeyValue("Face", f.Key().String())
	printKeyValue("Sides", fmt.Sprintf("%d", f.Arity()))
	printKeyValue("Vertices", formatVertexList(f.Vertices()))
	printKeyValue("Centroid", formatCentroid(f))
	printKeyValue("Neighbors", fmt.Sprintf("%d", len(f.Neighbors())))
}

func formatVertexList(keys []mesh.VertexKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

func formatCentroid(f mesh.FaceView[geom.Point]) string {
	p, err := f.Centroid()
	if err != nil {
		return "—"
	}
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", p.X, p.Y, p.Z)
}
