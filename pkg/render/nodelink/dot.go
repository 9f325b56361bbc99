package nodelink

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fontroute/pkg/catalog"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Tag restricts the diagram to one tag. Empty draws every route.
	Tag string
	// Detailed includes node ids and declared tags in font labels.
	// When false, only the font name is shown.
	Detailed bool
}

// ToDOT converts a catalog to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [Render].
//
// With a tag filter, fonts the tag is not attached to are left out.
// Fonts without any route are always drawn when no filter is set.
func ToDOT(cat *catalog.Catalog, opts Options) (string, error) {
	tag := ""
	if opts.Tag != "" {
		canon, err := catalog.CanonicalTag(opts.Tag)
		if err != nil {
			return "", err
		}
		tag = canon
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, f := range cat.Fonts() {
		if tag != "" && !slices.Contains(cat.AttachedTags(f.Name), tag) {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", f.Name, fmtLabel(f, opts.Detailed))
	}

	buf.WriteString("\n")
	rank := make(map[[2]string]int)
	for _, r := range cat.Routes() {
		key := [2]string{r.From, r.Tag}
		rank[key]++
		if tag != "" && r.Tag != tag {
			continue
		}
		label := fmt.Sprintf("%s #%d", r.Tag, rank[key])
		if tag != "" {
			label = fmt.Sprintf("#%d", rank[key])
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", r.From, r.To, label)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtLabel(f catalog.Font, detailed bool) string {
	if !detailed {
		return f.Name
	}
	return fmt.Sprintf("%s\nid: %d\ntags: %s", f.Name, f.ID, strings.Join(f.Tags, ", "))
}
