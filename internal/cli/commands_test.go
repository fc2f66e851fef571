package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hedron-dev/hedron/pkg/meshio"
)

const quadFixture = `{
	"vertices": [[0,0,0],[1,0,0],[1,1,0],[0,1,0]],
	"faces": [[0,1,2,3]]
}`

// writeFixture writes the quad mesh to a temp file and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quad.json")
	if err := os.WriteFile(path, []byte(quadFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// runCommand executes the root command with the given args and a disabled
// cache so tests do not touch the user's cache directory.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestBuildCommand(t *testing.T) {
	path := writeFixture(t)

	if err := runCommand(t, "build", path, "--no-cache"); err != nil {
		t.Fatalf("build: %v", err)
	}
}

func TestBuildCommandExport(t *testing.T) {
	path := writeFixture(t)
	out := filepath.Join(t.TempDir(), "out.toml")

	if err := runCommand(t, "build", path, "--no-cache", "-o", out); err != nil {
		t.Fatalf("build: %v", err)
	}

	m, err := meshio.Import(out)
	if err != nil {
		t.Fatalf("import exported mesh: %v", err)
	}
	if got, want := m.FaceCount(), 1; got != want {
		t.Errorf("face count = %d, want %d", got, want)
	}
}

func TestBuildCommandMissingFile(t *testing.T) {
	if err := runCommand(t, "build", filepath.Join(t.TempDir(), "absent.json"), "--no-cache"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestTransformCommand(t *testing.T) {
	path := writeFixture(t)
	out := filepath.Join(t.TempDir(), "out.json")

	if err := runCommand(t, "transform", path, "--no-cache", "-t", "triangulate", "-o", out); err != nil {
		t.Fatalf("transform: %v", err)
	}

	m, err := meshio.ImportJSON(out)
	if err != nil {
		t.Fatalf("import transformed mesh: %v", err)
	}
	if got, want := m.FaceCount(), 2; got != want {
		t.Errorf("face count after triangulation = %d, want %d", got, want)
	}
}

func TestTransformCommandInvalid(t *testing.T) {
	path := writeFixture(t)

	if err := runCommand(t, "transform", path, "--no-cache", "-t", "fold"); err == nil {
		t.Fatal("expected an error for an unknown transform")
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := writeFixture(t)
	base := filepath.Join(t.TempDir(), "quad")

	if err := runCommand(t, "render", path, "--no-cache", "-f", "dot,json", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("read dot artifact: %v", err)
	}
	if !bytes.HasPrefix(dot, []byte("graph G {")) {
		t.Errorf("dot artifact = %q, want DOT source", dot)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json artifact: %v", err)
	}
	m, err := meshio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode json artifact: %v", err)
	}
	if got, want := m.VertexCount(), 4; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeFixture(t)

	if err := runCommand(t, "stats", path); err != nil {
		t.Fatalf("stats: %v", err)
	}
}

func TestStatsCommandMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"vertices": [[0,0,0]], "faces": [[0,0,0]]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := runCommand(t, "stats", path); err == nil {
		t.Fatal("expected an error for malformed topology")
	}
}

func TestExportMeshUnsupported(t *testing.T) {
	path := writeFixture(t)
	m, err := meshio.Import(path)
	if err != nil {
		t.Fatalf("import fixture: %v", err)
	}

	if err := exportMesh(m, "mesh.obj"); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}
