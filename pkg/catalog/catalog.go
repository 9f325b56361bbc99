// Package catalog puts names on top of the integer fallback graph.
//
// Fonts get dense node ids in registration order and tags get dense tag ids
// in first-use order. Tag names are canonicalized with [CanonicalTag], so
// "arab" and "Arab" are the same tag.
//
// A Catalog is not safe for concurrent use.
package catalog

import (
	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/fallback"
)

// MaxEntries is the number of distinct fonts, and separately tags, a
// catalog can hold.
const MaxEntries = 1 << 16

// Font is a registered font.
type Font struct {
	Name string
	ID   fallback.NodeID
	// Tags are the canonical tags the font declared, first one first.
	Tags []string
}

// Route is a named route.
type Route struct {
	From string
	To   string
	Tag  string
}

// Catalog maps font and tag names onto a [fallback.Graph].
type Catalog struct {
	graph   *fallback.Graph
	fonts   []Font
	fontIDs map[string]fallback.NodeID
	tags    []string
	tagIDs  map[string]fallback.TagID
}

// New creates an empty catalog. Options are passed to the graph.
func New(opts ...fallback.Option) *Catalog {
	return &Catalog{
		graph:   fallback.New(opts...),
		fontIDs: make(map[string]fallback.NodeID),
		tagIDs:  make(map[string]fallback.TagID),
	}
}

// Graph returns the underlying graph. Mutating it directly bypasses the
// name tables.
func (c *Catalog) Graph() *fallback.Graph { return c.graph }

// Len returns the number of registered fonts.
func (c *Catalog) Len() int { return len(c.fonts) }

// AddFont registers a font with at least one tag. The first tag is attached
// right away; the others are kept as declared tags and attach once a route
// uses them.
func (c *Catalog) AddFont(name string, tags ...string) error {
	if err := errors.ValidateFontName(name); err != nil {
		return err
	}
	if _, ok := c.fontIDs[name]; ok {
		return errors.New(errors.ErrCodeInvalidFont, "font %q already registered", name)
	}
	if len(tags) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font %q has no tags", name)
	}
	if len(c.fonts) >= MaxEntries {
		return errors.New(errors.ErrCodeCapacity, "cannot register more than %d fonts", MaxEntries)
	}

	declared := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	fresh := 0
	for _, t := range tags {
		canon, err := CanonicalTag(t)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTag, err, "font %q", name)
		}
		if seen[canon] {
			continue
		}
		seen[canon] = true
		declared = append(declared, canon)
		if _, ok := c.tagIDs[canon]; !ok {
			fresh++
		}
	}
	if len(c.tags)+fresh > MaxEntries {
		return errors.New(errors.ErrCodeCapacity, "cannot register more than %d tags", MaxEntries)
	}

	first := fallback.TagID(0)
	for i, canon := range declared {
		id, _ := c.intern(canon)
		if i == 0 {
			first = id
		}
	}

	id := fallback.NodeID(len(c.fonts))
	if res := c.graph.AddNode(id, first); !res.OK() {
		// Ids are dense, so the slot must be free.
		return errors.FromResult(fallback.ResultCorrupted, "register font %q", name)
	}
	c.fonts = append(c.fonts, Font{Name: name, ID: id, Tags: declared})
	c.fontIDs[name] = id
	return nil
}

// AddRoute adds the route from → to for tag. The returned error is nil
// exactly when the result is [fallback.ResultOK].
//
// Unknown fonts yield [fallback.ResultNotExists]. An unparsable tag or tag
// capacity exhaustion yields [fallback.ResultFailed]. Graph results map to
// coded errors with [errors.FromResult].
func (c *Catalog) AddRoute(from, to, tag string) (fallback.Result, error) {
	fromID, ok := c.fontIDs[from]
	if !ok {
		return fallback.ResultNotExists, errors.New(errors.ErrCodeFontNotFound, "font %q not found", from)
	}
	toID, ok := c.fontIDs[to]
	if !ok {
		return fallback.ResultNotExists, errors.New(errors.ErrCodeFontNotFound, "font %q not found", to)
	}
	canon, err := CanonicalTag(tag)
	if err != nil {
		return fallback.ResultFailed, err
	}
	if _, known := c.tagIDs[canon]; !known && len(c.tags) >= MaxEntries {
		return fallback.ResultFailed, errors.New(errors.ErrCodeCapacity, "cannot register more than %d tags", MaxEntries)
	}

	tagID, fresh := c.intern(canon)
	res := c.graph.AddRoute(fromID, toID, tagID)
	if !res.OK() {
		if fresh {
			c.unintern(canon)
		}
		return res, errors.FromResult(res, "route %s -> %s [%s]", from, to, canon)
	}
	return res, nil
}

// Fallbacks returns up to limit direct fallbacks of font for tag, in
// insertion order. A limit below 1 returns all of them. A tag no route or
// font uses yields an empty result.
func (c *Catalog) Fallbacks(font, tag string, limit int) ([]string, error) {
	id, tagID, ok, err := c.resolve(font, tag)
	if err != nil || !ok {
		return nil, err
	}
	n := c.graph.FallbackCount(id, tagID)
	if limit > 0 && limit < n {
		n = limit
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]fallback.NodeID, n)
	n = c.graph.Fallbacks(id, tagID, buf)
	return c.names(buf[:n]), nil
}

// Chain returns every font reachable from font through routes of tag, in
// breadth-first order.
func (c *Catalog) Chain(font, tag string) ([]string, error) {
	id, tagID, ok, err := c.resolve(font, tag)
	if err != nil || !ok {
		return nil, err
	}
	return c.names(c.graph.Chain(id, tagID)), nil
}

// Font returns the font registered under name.
func (c *Catalog) Font(name string) (Font, bool) {
	id, ok := c.fontIDs[name]
	if !ok {
		return Font{}, false
	}
	return c.fonts[id], true
}

// FontName returns the name of the font with id, or "" if there is none.
func (c *Catalog) FontName(id fallback.NodeID) string {
	if int(id) >= len(c.fonts) {
		return ""
	}
	return c.fonts[id].Name
}

// TagName returns the name of the tag with id, or "" if there is none.
func (c *Catalog) TagName(id fallback.TagID) string {
	if int(id) >= len(c.tags) {
		return ""
	}
	return c.tags[id]
}

// TagID returns the id of a tag given in any spelling [CanonicalTag] accepts.
func (c *Catalog) TagID(tag string) (fallback.TagID, bool) {
	canon, err := CanonicalTag(tag)
	if err != nil {
		return 0, false
	}
	id, ok := c.tagIDs[canon]
	return id, ok
}

// Fonts returns the registered fonts in registration order.
func (c *Catalog) Fonts() []Font {
	out := make([]Font, len(c.fonts))
	for i, f := range c.fonts {
		f.Tags = append([]string(nil), f.Tags...)
		out[i] = f
	}
	return out
}

// TagNames returns the known tags in first-use order.
func (c *Catalog) TagNames() []string {
	return append([]string(nil), c.tags...)
}

// AttachedTags returns the tags currently attached to font in the graph,
// ordered by tag id.
func (c *Catalog) AttachedTags(font string) []string {
	id, ok := c.fontIDs[font]
	if !ok {
		return nil
	}
	ids := c.graph.Tags(id)
	out := make([]string, len(ids))
	for i, t := range ids {
		out[i] = c.TagName(t)
	}
	return out
}

// Routes returns every route ordered by source font, then tag id, then
// insertion order.
func (c *Catalog) Routes() []Route {
	raw := c.graph.Routes()
	out := make([]Route, len(raw))
	for i, r := range raw {
		out[i] = Route{From: c.FontName(r.From), To: c.FontName(r.To), Tag: c.TagName(r.Tag)}
	}
	return out
}

// resolve maps a font and tag name to ids. ok is false without an error
// when the tag is valid but unknown.
func (c *Catalog) resolve(font, tag string) (fallback.NodeID, fallback.TagID, bool, error) {
	id, found := c.fontIDs[font]
	if !found {
		return 0, 0, false, errors.New(errors.ErrCodeFontNotFound, "font %q not found", font)
	}
	canon, err := CanonicalTag(tag)
	if err != nil {
		return 0, 0, false, err
	}
	tagID, found := c.tagIDs[canon]
	return id, tagID, found, nil
}

func (c *Catalog) intern(canon string) (fallback.TagID, bool) {
	if id, ok := c.tagIDs[canon]; ok {
		return id, false
	}
	id := fallback.TagID(len(c.tags))
	c.tags = append(c.tags, canon)
	c.tagIDs[canon] = id
	return id, true
}

// unintern drops the most recently interned tag.
func (c *Catalog) unintern(canon string) {
	delete(c.tagIDs, canon)
	c.tags = c.tags[:len(c.tags)-1]
}

func (c *Catalog) names(ids []fallback.NodeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.FontName(id)
	}
	return out
}
