package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/graph"
)

// newTestCLI returns a non-interactive CLI whose status output is captured.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.In = strings.NewReader("")
	c.Out = &out
	off := false
	c.Interactive = &off
	return c, &out
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty means default", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and empties", " html , ,json", []string{"html", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "flightgraph"},
		{"out/network.html", "out/network"},
		{"network.svg", "network"},
		{"network", "network"},
		{"network.v2", "network.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"html": []byte("<html>"), "json": []byte("{}")}

	paths, err := writeArtifacts(artifacts, []string{"html", "json", "svg"}, filepath.Join(dir, "net.html"))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "net.html"), filepath.Join(dir, "net.json")}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], p)
		}
	}
	if got := readFile(t, want[1]); got != "{}" {
		t.Errorf("json content = %q", got)
	}
}

func TestRenderSceneHTML(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "network.html")

	if err := execute(c, "render", "--airports", "5", "--flights", "40", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}

	page := readFile(t, path)
	for _, want := range []string{"Network graph of flights", "plotly", "connections"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !strings.Contains(out.String(), "Rendered scene") {
		t.Errorf("output = %q, want success line", out.String())
	}
}

func TestRenderMultipleFormats(t *testing.T) {
	c, _ := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "network")

	if err := execute(c, "render", "--airports", "4", "--flights", "10", "-f", "html,json", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{".html", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", base+ext, err)
		}
	}
}

func TestRenderNodelinkDOT(t *testing.T) {
	c, _ := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "network.dot")

	err := execute(c, "render", "-t", "nodelink", "--dim", "2", "-f", "dot",
		"--airport", "JFK", "--airport", "LAX", "--airport", "ORD", "--flights", "30", "-o", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	dot := readFile(t, path)
	for _, want := range []string{"layout=neato", `"JFK"`, `"ORD"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderUserErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"one airport", []string{"--airports", "1", "--flights", "10"}, "need at least 2 airports"},
		{"negative flights", []string{"--airports", "3", "--flights", "-1"}, "cannot be negative"},
		{"bad dimensions", []string{"--airports", "3", "--dim", "4"}, "invalid dimensions"},
		{"bad type", []string{"--airports", "3", "-t", "heatmap"}, "invalid viz type"},
		{"format mismatch", []string{"--airports", "3", "-f", "svg"}, "invalid format"},
		{"repeated airport", []string{"--airport", "A", "--airport", "A", "--flights", "5"}, "duplicate airport identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCLI(t)
			dir := t.TempDir()
			args := append([]string{"render", "-o", filepath.Join(dir, "out.html")}, tt.args...)

			if err := execute(c, args...); err != nil {
				t.Fatalf("render returned %v, want nil", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("expected no output files, got %d", len(entries))
			}
		})
	}
}

func TestRenderMissingFlightsFile(t *testing.T) {
	c, _ := newTestCLI(t)
	err := execute(c, "render", "--flights-file", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing flights file")
	}
}

func TestRenderConfig(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.json")
	cfg := filepath.Join(dir, "flightgraph.toml")
	content := "airports = 4\nflights = 12\nformat = \"json\"\noutput = \"" + filepath.ToSlash(out) + "\"\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(c, "render", "--config", cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(readFile(t, out), "AIRPORT3") {
		t.Error("scene JSON should contain the fourth generated airport")
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	c, out := newTestCLI(t)
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(cfg, []byte("dimensions: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(c, "render", "--config", cfg); err != nil {
		t.Fatalf("render returned %v, want nil", err)
	}
	if !strings.Contains(strings.ToLower(out.String()), "dimensions") {
		t.Errorf("output = %q, want dimensions message", out.String())
	}
}

func TestRenderPromptInvalidInteger(t *testing.T) {
	c, out := newTestCLI(t)
	on := true
	c.Interactive = &on
	c.In = strings.NewReader("ten\r5\r")
	dir := t.TempDir()

	if err := execute(c, "render", "-o", filepath.Join(dir, "out.html")); err != nil {
		t.Fatalf("render returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), invalidCountsMessage) {
		t.Errorf("output missing %q", invalidCountsMessage)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("expected no output files, got %d", len(entries))
	}
}

func TestRenderPromptValid(t *testing.T) {
	c, _ := newTestCLI(t)
	on := true
	c.Interactive = &on
	c.In = strings.NewReader("3\r20\r")
	path := filepath.Join(t.TempDir(), "out.json")

	if err := execute(c, "render", "-f", "json", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data := readFile(t, path)
	if !strings.Contains(data, "AIRPORT2") || strings.Contains(data, "AIRPORT3") {
		t.Errorf("scene should contain exactly 3 airports:\n%s", data)
	}
}

// pipeStdin returns a CLI reading input from an os.Pipe, which is not a
// terminal, with the prompt left in its automatic mode.
func pipeStdin(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	c, out := newTestCLI(t)
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	if _, err := io.WriteString(w, input); err != nil {
		t.Fatal(err)
	}
	w.Close()
	c.In = r
	c.Interactive = nil
	return c, out
}

func TestRenderPipedInvalidInteger(t *testing.T) {
	c, out := pipeStdin(t, "ten\n5\n")
	dir := t.TempDir()

	if err := execute(c, "render", "-o", filepath.Join(dir, "out.html")); err != nil {
		t.Fatalf("render returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), invalidCountsMessage) {
		t.Errorf("output = %q, want %q", out.String(), invalidCountsMessage)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("expected no output files, got %d", len(entries))
	}
}

func TestRenderPipedCounts(t *testing.T) {
	c, _ := pipeStdin(t, "3\n20\n")
	path := filepath.Join(t.TempDir(), "out.json")

	if err := execute(c, "render", "-f", "json", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data := readFile(t, path)
	if !strings.Contains(data, "AIRPORT2") || strings.Contains(data, "AIRPORT3") {
		t.Errorf("scene should contain exactly 3 airports:\n%s", data)
	}
}

func TestGenerateAndLayout(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	flightsPath := filepath.Join(dir, "flights.json")

	if err := execute(c, "generate", "--airports", "4", "--flights", "30", "-o", flightsPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	records, err := flights.ReadFile(flightsPath)
	if err != nil {
		t.Fatalf("read flights: %v", err)
	}
	if len(records) != 30 {
		t.Fatalf("got %d records, want 30", len(records))
	}
	if !strings.Contains(out.String(), "Generated 30 flights between 4 airports") {
		t.Errorf("output = %q", out.String())
	}

	if err := execute(c, "layout", flightsPath, "-t", "nodelink", "--dim", "2"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	g, err := graph.ReadGraphFile(filepath.Join(dir, "flights.graph.json"))
	if err != nil {
		t.Fatalf("read graph: %v", err)
	}
	if got, want := g.NodeCount(), len(flights.Airports(records)); got != want {
		t.Errorf("graph has %d nodes, want %d", got, want)
	}

	l, err := graph.ReadLayoutFile(filepath.Join(dir, "flights.layout.json"))
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.Dimensions != 2 || !l.IsNodelink() {
		t.Errorf("layout = %d dims %s, want 2 dims nodelink", l.Dimensions, l.VizType)
	}
	if len(l.Positions) != g.NodeCount() {
		t.Errorf("layout has %d positions, want %d", len(l.Positions), g.NodeCount())
	}
}

func TestGenerateOneAirport(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "flights.json")

	if err := execute(c, "generate", "--airports", "1", "--flights", "0", "-o", path); err != nil {
		t.Fatalf("generate returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), "need at least 2 airports") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written")
	}
}

func TestRootCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	for _, name := range []string{"render", "generate", "layout", "visualize", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.Version == "" {
		t.Error("root command should carry a version")
	}
}

func TestCompletion(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})

	if err := root.Execute(); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(buf.String(), "flightgraph") {
		t.Error("bash completion should mention the command name")
	}
}
