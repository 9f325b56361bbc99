// Package nodelink renders fallback catalogs as node-link diagrams.
//
// # Overview
//
// Fonts appear as boxes and routes as arrows from a font to its fallback.
// Each arrow is labelled with its tag and its rank, the 1-based position of
// the fallback in the source font's list for that tag.
//
// # Usage
//
// Convert a catalog to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(cat, nodelink.Options{Tag: "Arab"})
//	svg, err := nodelink.RenderSVG(dot)
//
// [Render] does the same through a [cache.Cache], keyed by the hash of the
// DOT source and the output format:
//
//	out, err := nodelink.Render(ctx, c, dot, nodelink.FormatSVG)
//
// # Options
//
//   - Tag: only draw routes of this tag, and the fonts it is attached to
//   - Detailed: add node ids and declared tags to font labels
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
