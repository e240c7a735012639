package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// DefaultPlotlyURL is the plotly.js bundle loaded by rendered pages.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Options configures RenderHTML.
type Options struct {
	// Title is shown above the plot. Empty means DefaultTitle.
	Title string

	// PlotlyURL overrides the plotly.js script location.
	PlotlyURL string
}

// trace is the subset of a plotly scatter3d trace that scenes use.
// Nil coordinates break a line into separate segments.
type trace struct {
	Type      string     `json:"type"`
	Mode      string     `json:"mode"`
	X         []*float64 `json:"x"`
	Y         []*float64 `json:"y"`
	Z         []*float64 `json:"z"`
	Text      []string   `json:"text"`
	HoverInfo string     `json:"hoverinfo"`
	Line      *line      `json:"line,omitempty"`
	Marker    *marker    `json:"marker,omitempty"`
}

type line struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type marker struct {
	Size float64 `json:"size"`
	Line line    `json:"line"`
}

func edgeTrace(s *Scene) trace {
	t := trace{Type: "scatter3d", Mode: "lines", HoverInfo: "text", Line: &line{Width: 0.5, Color: "#888"}}
	for _, e := range s.Edges {
		t.X = append(t.X, &e.Start[0], &e.End[0], nil)
		t.Y = append(t.Y, &e.Start[1], &e.End[1], nil)
		t.Z = append(t.Z, &e.Start[2], &e.End[2], nil)
		t.Text = append(t.Text, e.Text, e.Text, "")
	}
	return t
}

func nodeTrace(s *Scene) trace {
	t := trace{Type: "scatter3d", Mode: "markers", HoverInfo: "text", Marker: &marker{Size: 10, Line: line{Width: 2, Color: "#333"}}}
	for _, n := range s.Nodes {
		t.X = append(t.X, &n.X)
		t.Y = append(t.Y, &n.Y)
		t.Z = append(t.Z, &n.Z)
		t.Text = append(t.Text, n.Text)
	}
	return t
}

// Traces returns the plotly edge and node traces of s as JSON.
func Traces(s *Scene) ([]byte, error) {
	data, err := json.Marshal([]trace{edgeTrace(s), nodeTrace(s)})
	if err != nil {
		return nil, fmt.Errorf("encode traces: %w", err)
	}
	return data, nil
}

// RenderHTML generates a self-contained HTML page with the interactive scene.
func RenderHTML(s *Scene, opts Options) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.PlotlyURL == "" {
		opts.PlotlyURL = DefaultPlotlyURL
	}

	traces, err := Traces(s)
	if err != nil {
		return nil, err
	}

	data := struct {
		Title     string
		PlotlyURL string
		RunID     string
		Traces    template.JS
	}{
		Title:     opts.Title,
		PlotlyURL: opts.PlotlyURL,
		RunID:     s.RunID,
		Traces:    template.JS(traces),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("scene").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="{{.PlotlyURL}}"></script>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; background: white; }
        #scene { width: 100vw; height: 100vh; }
    </style>
</head>
<body{{if .RunID}} data-run-id="{{.RunID}}"{{end}}>
    <div id="scene"></div>
    <script>
        const hidden = { showgrid: false, zeroline: false, showticklabels: false, showbackground: false, title: "" };
        Plotly.newPlot("scene", {{.Traces}}, {
            title: { text: {{.Title}}, font: { size: 16 } },
            showlegend: false,
            hovermode: "closest",
            margin: { b: 20, l: 5, r: 5, t: 40 },
            scene: { xaxis: hidden, yaxis: hidden, zaxis: hidden }
        }, { responsive: true });
    </script>
</body>
</html>
`
