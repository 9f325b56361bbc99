// Package pkg provides the libraries behind fontroute, a per-script font
// fallback router.
//
// # Overview
//
// A fallback table says which font to try next when a font lacks glyphs for
// a script or language. fontroute keeps such tables as a graph with one
// acyclic subgraph per tag, so a lookup can never loop back to the font it
// started from. The pkg directory is organized into these areas:
//
//  1. [fallback] - The graph: dense ids, cycle-checked route insertion, queries
//  2. [catalog] - Names on top of the graph: fonts, canonical tags, routes
//  3. [io] - TOML and JSON fallback files, strict and lenient builds
//  4. [render] - Node-link diagrams through Graphviz
//  5. [server] - The HTTP query service
//  6. [cache], [observability], [errors], [services], [debug] - Infrastructure
//
// # Architecture
//
// The typical data flow through fontroute:
//
//	fallbacks.toml / fallbacks.json
//	         ↓
//	    [io] package (decode, build)
//	         ↓
//	    [catalog] package (names → ids)
//	         ↓
//	    [fallback] package (graph)
//	         ↓
//	    query results, DOT/SVG/PNG, HTTP responses
//
// # Quick Start
//
// Load a fallback file and ask for the Arabic fallbacks of a font:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/fontroute/pkg/io"
//	)
//
//	cat, report, err := io.ImportFile(ctx, "fallbacks.toml", io.Options{})
//	if err != nil {
//	    return err
//	}
//	log.Printf("%d routes rejected", len(report.Rejected))
//	names, err := cat.Fallbacks("Noto Sans", "Arab", 4)
//
// The graph can also be used directly with numeric ids:
//
//	g := fallback.New()
//	g.AddNode(0, latin)
//	g.AddNode(1, arabic)
//	res := g.AddRoute(0, 1, arabic) // fallback.ResultOK
package pkg
