package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fontroute/pkg/cache"
	"github.com/matzehuels/fontroute/pkg/errors"
)

// Output formats accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Formats lists the output formats accepted by [Render].
var Formats = []string{FormatDOT, FormatSVG, FormatPNG}

// DefaultTTL is how long rendered output stays cached.
const DefaultTTL = 7 * 24 * time.Hour

// Render renders dot in format, reading and filling c. Cache failures are
// ignored and fall through to rendering. A nil c disables caching.
func Render(ctx context.Context, c cache.Cache, dot, format string) ([]byte, error) {
	if format == FormatDOT {
		return []byte(dot), nil
	}
	gvFormat, ok := graphvizFormat(format)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported render format %q", format)
	}
	if c == nil {
		c = cache.NewNullCache()
	}

	key := cache.RenderKey(cache.Hash([]byte(dot)), format)
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, nil
	}

	out, err := render(ctx, dot, gvFormat)
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, out, DefaultTTL)
	return out, nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(context.Background(), dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(context.Background(), dot, graphviz.PNG)
}

func graphvizFormat(format string) (graphviz.Format, bool) {
	switch format {
	case FormatSVG:
		return graphviz.SVG, true
	case FormatPNG:
		return graphviz.PNG, true
	default:
		return "", false
	}
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a
// zero-origin viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
