package sink

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/synteny/pkg/color"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/layout"
	"github.com/matzehuels/synteny/pkg/tree"
)

const hoverOpacity = 0.1

const hoverCSS = `
    .link { transition: opacity 0.2s ease; }
    .link.faded { opacity: %.2f; }`

const hoverJS = `
    document.querySelectorAll('.karyo').forEach(k => {
      const keep = (k.dataset.links || '').split(' ');
      k.addEventListener('mouseenter', () => {
        document.querySelectorAll('.link').forEach(l => l.classList.toggle('faded', !keep.includes(l.dataset.link)));
      });
      k.addEventListener('mouseleave', () => {
        document.querySelectorAll('.link').forEach(l => l.classList.remove('faded'));
      });
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	hover      bool
	ticks      bool
	background string
	tree       []byte
	treeParams tree.Params
}

// WithHover embeds the link fading script.
func WithHover() SVGOption { return func(r *svgRenderer) { r.hover = true } }

// WithoutTicks leaves out the tick marks.
func WithoutTicks() SVGOption { return func(r *svgRenderer) { r.ticks = false } }

// WithBackground fills the canvas with a solid color.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithTree places a rendered tree panel (see [tree.RenderSVG]) next to the
// rows of a linear drawing. It is ignored when the frame reserves no tree
// space.
func WithTree(svg []byte, p tree.Params) SVGOption {
	return func(r *svgRenderer) { r.tree, r.treeParams = svg, p }
}

// RenderSVG draws res, which must have been computed from s.
func RenderSVG(res layout.Result, s layout.Snapshot, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{ticks: true}
	for _, opt := range opts {
		opt(&r)
	}

	p, err := newPalette(s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch {
	case res.Linear != nil:
		err = r.linear(&buf, *res.Linear, s, p)
	case res.Circular != nil:
		err = r.circular(&buf, *res.Circular, s, p)
	default:
		err = errors.New(errors.ErrCodeInvalidLayout, "nothing to render for layout %q", res.Layout)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *svgRenderer) open(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if r.hover {
		buf.WriteString("  <style>")
		fmt.Fprintf(buf, hoverCSS, hoverOpacity)
		buf.WriteString("\n  </style>\n")
	}
	if r.background != "" {
		fmt.Fprintf(buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	}
}

func (r *svgRenderer) close(buf *bytes.Buffer) {
	if r.hover {
		buf.WriteString("  <script><![CDATA[")
		buf.WriteString(hoverJS)
		buf.WriteString("\n  ]]></script>\n")
	}
	buf.WriteString("</svg>\n")
}

// palette resolves the fill colors of one snapshot.
type palette struct {
	snap    layout.Snapshot
	links   color.Scale
	genomes color.Scale
}

func newPalette(s layout.Snapshot) (palette, error) {
	links, err := color.Identity(s.Config)
	if err != nil {
		return palette{}, fmt.Errorf("link colors: %w", err)
	}
	genomes, err := color.Genome(s.Config, len(s.Filters.Karyo.GenomeOrder))
	if err != nil {
		return palette{}, fmt.Errorf("genome colors: %w", err)
	}
	return palette{snap: s, links: links, genomes: genomes}, nil
}

func (p palette) link(id string) (string, error) {
	l, ok := p.snap.Data.Links[id]
	if !ok {
		return "", errors.New(errors.ErrCodeNotFound, "link %q not in data", id)
	}
	return p.links.Hex(l.Identity), nil
}

func (p palette) karyo(id string) (string, error) {
	c, err := p.snap.Data.Chromosome(id)
	if err != nil {
		return "", err
	}
	row, err := p.snap.Filters.GenomeIndex(c.GenomeID)
	if err != nil {
		return "", err
	}
	return p.genomes.Hex(float64(row)), nil
}

func (p palette) feature(group string) string {
	k, _ := p.snap.Config.Features.Kind(group)
	return k.Color
}

// karyoAttrs returns the hover data of a karyo element.
func (r *svgRenderer) karyoAttrs(s layout.Snapshot, id string) (string, error) {
	if !r.hover {
		return "", nil
	}
	links, err := layout.LinksOfKaryo(s.Data, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(` data-links="%s"`, html.EscapeString(strings.Join(links, " "))), nil
}

func writeLabels(buf *bytes.Buffer, class string, size float64, labels []layout.LabelCoord) {
	if len(labels) == 0 {
		return
	}
	fmt.Fprintf(buf, `    <g class="%sGroup" font-family="sans-serif" font-size="%.0fpx" fill="red" text-anchor="middle">`+"\n", class, size)
	for _, l := range labels {
		fmt.Fprintf(buf, `      <text class="%s" x="%.2f" y="%.2f">%s</text>`+"\n", class, l.X, l.Y, html.EscapeString(l.Name))
	}
	buf.WriteString("    </g>\n")
}
