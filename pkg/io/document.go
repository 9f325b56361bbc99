package io

import "github.com/matzehuels/fontroute/pkg/catalog"

// Document is the decoded content of a fallback file.
type Document struct {
	Fonts  []FontEntry  `json:"fonts" toml:"fonts"`
	Routes []RouteEntry `json:"routes" toml:"routes"`
}

// FontEntry declares a font and its tags. The first tag is required.
type FontEntry struct {
	Name string   `json:"name" toml:"name"`
	Tags []string `json:"tags" toml:"tags"`
}

// RouteEntry declares a route From → To for Tag.
type RouteEntry struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
	Tag  string `json:"tag" toml:"tag"`
}

// FromCatalog converts a catalog into a document. Fonts keep registration
// order. Routes are grouped by source font and tag and keep insertion order
// within a group, so building the document again yields the same fallbacks.
func FromCatalog(cat *catalog.Catalog) *Document {
	doc := &Document{
		Fonts:  []FontEntry{},
		Routes: []RouteEntry{},
	}
	for _, f := range cat.Fonts() {
		doc.Fonts = append(doc.Fonts, FontEntry{Name: f.Name, Tags: f.Tags})
	}
	for _, r := range cat.Routes() {
		doc.Routes = append(doc.Routes, RouteEntry{From: r.From, To: r.To, Tag: r.Tag})
	}
	return doc
}
