// Package render groups the visualizations of a fallback catalog.
//
// The [nodelink] subpackage draws fonts as nodes and routes as labelled
// edges. It builds Graphviz DOT text and lays it out with go-graphviz, so no
// external Graphviz installation is needed:
//
//	dot, err := nodelink.ToDOT(cat, nodelink.Options{Tag: "Arab"})
//	svg, err := nodelink.Render(ctx, cache.NewNullCache(), dot, nodelink.FormatSVG)
//
// Rendered output is cached by a hash of the DOT text and the format.
package render
