// Package io reads and writes fallback files.
//
// # Overview
//
// A fallback file lists fonts with their tags and the routes between them.
// It is the on-disk form of a [catalog.Catalog]:
//
//   - Fonts are registered in file order and get node ids in that order
//   - Routes are added in file order, which fixes the fallback order per tag
//   - Writing a catalog and reading the result back yields the same fallbacks
//
// # JSON Format
//
//	{
//	  "fonts": [
//	    {"name": "Noto Sans", "tags": ["Latn", "en"]},
//	    {"name": "Noto Naskh Arabic", "tags": ["Arab"]}
//	  ],
//	  "routes": [
//	    {"from": "Noto Sans", "to": "Noto Naskh Arabic", "tag": "Arab"}
//	  ]
//	}
//
// # TOML Format
//
//	[[fonts]]
//	name = "Noto Sans"
//	tags = ["Latn", "en"]
//
//	[[fonts]]
//	name = "Noto Naskh Arabic"
//	tags = ["Arab"]
//
//	[[routes]]
//	from = "Noto Sans"
//	to = "Noto Naskh Arabic"
//	tag = "Arab"
//
// Unknown fields are rejected in both formats.
//
// # Import
//
// Use [ImportFile] to decode a file by extension and build a catalog, or
// [ReadJSON] / [ReadTOML] followed by [Build] for any io.Reader:
//
//	cat, report, err := io.ImportFile(ctx, "fonts.toml", io.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range report.Rejected {
//	    fmt.Println("skipped", r.Route, r.Result)
//	}
//
// By default a route the graph refuses because it already exists or would
// close a cycle is recorded in the [Report] and the build goes on. With
// [Options.Strict] the first such route fails the build. Unknown fonts,
// invalid tags and corruption always fail it.
//
// # Export
//
// Use [ExportFile] to write a catalog by extension, or [WriteJSON] /
// [WriteTOML] to write to any io.Writer.
package io
