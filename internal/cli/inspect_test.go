package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

func loadQuadStrip(t *testing.T) *pipeline.Mesh {
	t.Helper()
	const src = `{
		"vertices": [[0,0,0],[1,0,0],[2,0,0],[0,1,0],[1,1,0],[2,1,0]],
		"faces": [[0,1,4,3],[1,2,5,4]]
	}`
	m, err := meshio.ReadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("build mesh: %v", err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFaceListModelNavigation(t *testing.T) {
	m := NewFaceListModel(loadQuadStrip(t))

	if got, want := len(m.Faces), 2; got != want {
		t.Fatalf("face count = %d, want %d", got, want)
	}

	// Cursor starts at the first face and cannot move above it.
	next, _ := m.Update(keyMsg("up"))
	m = next.(FaceListModel)
	if got, want := m.Cursor, 0; got != want {
		t.Errorf("cursor after up at top = %d, want %d", got, want)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(FaceListModel)
	if got, want := m.Cursor, 1; got != want {
		t.Errorf("cursor after down = %d, want %d", got, want)
	}

	// Cursor stops at the last face.
	next, _ = m.Update(keyMsg("down"))
	m = next.(FaceListModel)
	if got, want := m.Cursor, 1; got != want {
		t.Errorf("cursor after down at bottom = %d, want %d", got, want)
	}
}

func TestFaceListModelSelect(t *testing.T) {
	m := NewFaceListModel(loadQuadStrip(t))

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(FaceListModel)

	if m.Selected == nil {
		t.Fatal("expected a selection after enter")
	}
	if got, want := m.Selected.Arity(), 4; got != want {
		t.Errorf("selected face arity = %d, want %d", got, want)
	}
	if cmd == nil {
		t.Error("expected tea.Quit command after enter")
	}
}

func TestFaceListModelQuit(t *testing.T) {
	m := NewFaceListModel(loadQuadStrip(t))

	next, cmd := m.Update(keyMsg("q"))
	m = next.(FaceListModel)

	if m.Selected != nil {
		t.Error("quit should not select a face")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command after q")
	}
}

func TestFaceListModelView(t *testing.T) {
	m := NewFaceListModel(loadQuadStrip(t))

	view := m.View()
	if !strings.Contains(view, "Faces") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "f1") {
		t.Errorf("view missing first face key:\n%s", view)
	}
	if !strings.Contains(view, "[1/2]") {
		t.Errorf("view missing position indicator:\n%s", view)
	}
}
