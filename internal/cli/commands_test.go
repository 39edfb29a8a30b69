package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const commandData = `{
  "karyo": {
    "chromosomes": {
      "c1": {"genome_id": 0, "length": 2000},
      "c2": {"genome_id": 1, "length": 1000}
    }
  },
  "features": {
    "f1": {"karyo": "c1", "start": 100, "end": 600},
    "f2": {"karyo": "c2", "start": 100, "end": 600}
  },
  "links": {
    "l1": {"source": "f1", "target": "f2", "identity": 90}
  }
}`

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func writeCommandData(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "grape.json")
	if err := os.WriteFile(path, []byte(commandData), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestLayoutCommand(t *testing.T) {
	dir, data := writeCommandData(t)
	out := filepath.Join(dir, "out", "grape.layout.json")

	if err := runCommand(t, "layout", data, "--no-cache", "-o", out, "--layout", "circular"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Layout   string          `json:"layout"`
		Circular json.RawMessage `json:"circular"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Layout != "circular" || len(doc.Circular) == 0 {
		t.Errorf("output = %s", raw)
	}
}

func TestRenderCommandSVG(t *testing.T) {
	dir, data := writeCommandData(t)
	base := filepath.Join(dir, "drawing")

	if err := runCommand(t, "render", data, "--no-cache", "-o", base+".svg", "-f", "svg,json", "--set", "width=800"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}
	svg, _ := os.ReadFile(base + ".svg")
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("svg output starts with %q", svg[:min(40, len(svg))])
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	_, data := writeCommandData(t)
	if err := runCommand(t, "render", data, "--no-cache", "-f", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestTreeCommandWithoutTree(t *testing.T) {
	_, data := writeCommandData(t)
	err := runCommand(t, "tree", data, "--dot")
	if err == nil || !strings.Contains(err.Error(), "no tree") {
		t.Errorf("tree = %v, want a missing tree error", err)
	}
}

func TestTreeCommandDOT(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "grape.json")
	withTree := strings.Replace(commandData, `"links"`, `"tree": {"children": [{"name": "0"}, {"name": "1"}]}, "links"`, 1)
	if err := os.WriteFile(data, []byte(withTree), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "tree", data, "--dot"); err != nil {
		t.Fatalf("tree: %v", err)
	}
	dot, err := os.ReadFile(filepath.Join(dir, "grape.tree.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "digraph") {
		t.Errorf("dot output = %q", dot)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			c := New(&bytes.Buffer{}, LogInfo)
			root := c.RootCommand()
			var out bytes.Buffer
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("completion %s does not mention %s", shell, appName)
			}
		})
	}
	if err := runCommand(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh: expected an error")
	}
}
