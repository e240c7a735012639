// Package scene renders airport graphs as interactive 3D scenes.
//
// [Build] combines a graph, its layout and the raw flight records into a
// [Scene]: one segment per edge, hover text "A to B: N flights" where N
// counts the records flown in that direction, and one marker per airport
// with hover text "A: K connections". [RenderHTML] turns a scene into a
// self-contained page that loads plotly.js from a CDN; the plot can be
// rotated and zoomed in any browser.
//
//	s, err := scene.Build(g, l, records)
//	page, err := scene.RenderHTML(s, scene.Options{})
//
// 2D layouts are drawn on the z = 0 plane.
package scene
