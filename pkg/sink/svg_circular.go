package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/matzehuels/synteny/pkg/layout"
)

func (r *svgRenderer) circular(buf *bytes.Buffer, c layout.Circular, s layout.Snapshot, p palette) error {
	g := s.Config.Graphical
	outer := c.OuterRadius
	inner := outer - g.KaryoHeight
	chordRadius := inner - g.LinkKaryoDistance

	r.open(buf, c.Width, c.Height)
	fmt.Fprintf(buf, `  <g class="content" transform="translate(%.2f, %.2f)">`+"\n", c.Center.X, c.Center.Y)

	if r.ticks {
		buf.WriteString(`    <g class="tickGroup" stroke="#000">` + "\n")
		for _, a := range c.Ticks {
			from, to := polar(outer+c.TickSize, a), polar(outer, a)
			fmt.Fprintf(buf, `      <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", from.X, from.Y, to.X, to.Y)
		}
		buf.WriteString("    </g>\n")
	}

	buf.WriteString(`    <g class="karyoGroup">` + "\n")
	for _, k := range c.Karyos {
		fill, err := p.karyo(k.Karyo)
		if err != nil {
			return err
		}
		attrs, err := r.karyoAttrs(s, k.Karyo)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, `      <path class="karyo" id="karyo-%s" d="%s" fill="%s"%s/>`+"\n",
			html.EscapeString(k.Karyo), annulus(inner, outer, k.StartAngle, k.EndAngle), fill, attrs)
	}
	buf.WriteString("    </g>\n")

	fmt.Fprintf(buf, `    <g class="linkGroup" opacity="%.2f">`+"\n", g.LinkOpacity)
	for _, ch := range c.Links {
		fill, err := p.link(ch.LinkID)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, `      <path class="link" data-link="%s" d="%s" fill="%s"/>`+"\n",
			html.EscapeString(ch.LinkID), chord(chordRadius, ch), fill)
	}
	buf.WriteString("    </g>\n  </g>\n")

	r.close(buf)
	return nil
}

// polar maps an angle measured clockwise from twelve o'clock to a point.
func polar(radius, angle float64) layout.Point {
	return layout.Point{X: radius * math.Sin(angle), Y: -radius * math.Cos(angle)}
}

func largeArc(a0, a1 float64) int {
	if math.Abs(a1-a0) > math.Pi {
		return 1
	}
	return 0
}

// annulus is the ring segment between two radii. Reversed arcs are drawn
// with the same shape as their forward counterparts.
func annulus(inner, outer, a0, a1 float64) string {
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	large := largeArc(a0, a1)
	o0, o1 := polar(outer, a0), polar(outer, a1)
	i0, i1 := polar(inner, a0), polar(inner, a1)

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", o0.X, o0.Y)
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d,1 %.2f,%.2f", outer, outer, large, o1.X, o1.Y)
	fmt.Fprintf(&b, "L%.2f,%.2f", i1.X, i1.Y)
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d,0 %.2f,%.2f", inner, inner, large, i0.X, i0.Y)
	b.WriteString("Z")
	return b.String()
}

// chord connects two arcs of the same circle through its centre.
func chord(radius float64, c layout.ChordCoord) string {
	s0, s1 := polar(radius, c.Source.StartAngle), polar(radius, c.Source.EndAngle)
	t0, t1 := polar(radius, c.Target.StartAngle), polar(radius, c.Target.EndAngle)
	sweep := func(a layout.AngleSpan) int {
		if a.EndAngle < a.StartAngle {
			return 0
		}
		return 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", s0.X, s0.Y)
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d,%d %.2f,%.2f", radius, radius,
		largeArc(c.Source.StartAngle, c.Source.EndAngle), sweep(c.Source), s1.X, s1.Y)
	fmt.Fprintf(&b, "Q0,0 %.2f,%.2f", t0.X, t0.Y)
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d,%d %.2f,%.2f", radius, radius,
		largeArc(c.Target.StartAngle, c.Target.EndAngle), sweep(c.Target), t1.X, t1.Y)
	fmt.Fprintf(&b, "Q0,0 %.2f,%.2f", s0.X, s0.Y)
	b.WriteString("Z")
	return b.String()
}
