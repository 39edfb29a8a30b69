package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/layout"
)

func (r *svgRenderer) linear(buf *bytes.Buffer, l layout.Linear, s layout.Snapshot, p palette) error {
	f := l.Frame
	cfg := s.Config

	r.open(buf, f.Width, f.Height)
	fmt.Fprintf(buf, `  <g class="content" transform="translate(%.2f, 0)">`+"\n", f.ContentX)

	if r.ticks {
		buf.WriteString(`    <g class="tickGroup" stroke="#000">` + "\n")
		for _, t := range l.Ticks {
			fmt.Fprintf(buf, `      <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", t.X1, t.Y1, t.X2, t.Y2)
		}
		buf.WriteString("    </g>\n")
	}

	buf.WriteString(`    <g class="karyoGroup">` + "\n")
	for _, k := range l.Karyos {
		fill, err := p.karyo(k.Karyo)
		if err != nil {
			return err
		}
		attrs, err := r.karyoAttrs(s, k.Karyo)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, `      <rect class="karyo" id="karyo-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
			html.EscapeString(k.Karyo), math.Min(k.X, k.X+k.Width), k.Y, math.Abs(k.Width), k.Height, fill, attrs)
	}
	buf.WriteString("    </g>\n")

	fmt.Fprintf(buf, `    <g class="linkGroup" opacity="%.2f">`+"\n", cfg.Graphical.LinkOpacity)
	for _, lc := range l.Links {
		fill, err := p.link(lc.LinkID)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, `      <path class="link" data-link="%s" d="%s" fill="%s"/>`+"\n",
			html.EscapeString(lc.LinkID), ribbon(lc), fill)
	}
	buf.WriteString("    </g>\n")

	writeFeatures(buf, l.Features, p)
	writeLabels(buf, "chromosomeLabel", cfg.Labels.Chromosome.Size, l.ChromosomeLabels)
	writeLabels(buf, "featureLabel", cfg.Labels.Features.Size, l.FeatureLabels)
	buf.WriteString("  </g>\n")

	if len(l.GenomeLabels) > 0 {
		fmt.Fprintf(buf, `  <g class="genomeLabels" transform="translate(%.2f, 0)">`+"\n", f.GenomeLabelX)
		writeLabels(buf, "genomeLabel", cfg.Labels.Genome.Size, l.GenomeLabels)
		buf.WriteString("  </g>\n")
	}

	if f.Tree && len(r.tree) > 0 {
		fmt.Fprintf(buf, `  <g class="treeGroup" transform="translate(%.2f, %.2f)">`+"\n", f.TreeX, r.treeParams.OffsetY)
		buf.Write(bytes.TrimSpace(r.tree))
		buf.WriteString("\n  </g>\n")
	}

	r.close(buf)
	return nil
}

// ribbon joins both link ends with two vertical diagonals.
func ribbon(l layout.LinkCoord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", l.Source0.X, l.Source0.Y)
	diagonal(&b, l.Source0, l.Target0)
	fmt.Fprintf(&b, "L%.2f,%.2f", l.Target1.X, l.Target1.Y)
	diagonal(&b, l.Target1, l.Source1)
	b.WriteString("Z")
	return b.String()
}

func diagonal(b *strings.Builder, from, to layout.Point) {
	mid := (from.Y + to.Y) / 2
	fmt.Fprintf(b, "C%.2f,%.2f %.2f,%.2f %.2f,%.2f", from.X, mid, to.X, mid, to.X, to.Y)
}

func writeFeatures(buf *bytes.Buffer, features []layout.FeatureCoord, p palette) {
	if len(features) == 0 {
		return
	}
	buf.WriteString(`    <g class="featureGroup">` + "\n")
	for _, f := range features {
		fill := html.EscapeString(p.feature(f.Group))
		if f.Form == config.FormArrow && len(f.Arrow) > 0 {
			pts := make([]string, len(f.Arrow))
			for i, pt := range f.Arrow {
				pts[i] = fmt.Sprintf("%.2f,%.2f", pt.X, pt.Y)
			}
			fmt.Fprintf(buf, `      <polygon class="feature" id="feature-%s" points="%s" fill="%s"/>`+"\n",
				html.EscapeString(f.ID), strings.Join(pts, " "), fill)
			continue
		}
		fmt.Fprintf(buf, `      <rect class="feature" id="feature-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			html.EscapeString(f.ID), math.Min(f.X, f.X+f.Width), f.Y, math.Abs(f.Width), f.Height, fill)
	}
	buf.WriteString("    </g>\n")
}
