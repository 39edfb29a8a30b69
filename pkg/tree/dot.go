package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/genome"
)

// pointsPerInch converts pixel sizes to the inches Graphviz expects.
const pointsPerInch = 72

// ToDOT converts a tree to Graphviz DOT. Nodes are numbered in depth-first
// order; leaves keep their names as labels and share the last rank.
func ToDOT(root *genome.TreeNode, p Params) string {
	rankdir := "LR"
	if p.Orientation == config.OrientationRight {
		rankdir = "RL"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph T {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  size=\"%.2f,%.2f!\";\n", p.Width/pointsPerInch, p.Height/pointsPerInch)
	buf.WriteString("  ratio=fill;\n")
	buf.WriteString("  splines=ortho;\n")
	buf.WriteString("  node [shape=point, width=0.05];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	w := &dotWriter{buf: &buf}
	if !root.IsEmpty() {
		w.node(root)
	}

	if len(w.leaves) > 0 {
		buf.WriteString("\n  { rank=same;")
		for _, id := range w.leaves {
			fmt.Fprintf(&buf, " %q;", id)
		}
		buf.WriteString(" }\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf    *bytes.Buffer
	next   int
	leaves []string
}

func (w *dotWriter) node(n *genome.TreeNode) string {
	id := "n" + strconv.Itoa(w.next)
	w.next++

	if len(n.Children) == 0 {
		fmt.Fprintf(w.buf, "  %q [shape=plaintext, label=%q];\n", id, n.Name)
		w.leaves = append(w.leaves, id)
		return id
	}
	fmt.Fprintf(w.buf, "  %q;\n", id)
	for _, c := range n.Children {
		if c.IsEmpty() {
			continue
		}
		child := w.node(c)
		fmt.Fprintf(w.buf, "  %q -> %q;\n", id, child)
	}
	return id
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func viewBox(svg []byte) (w, h float64, ok bool) {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return 0, 0, false
	}
	w, _ = strconv.ParseFloat(string(match[3]), 64)
	h, _ = strconv.ParseFloat(string(match[4]), 64)
	return w, h, w != 0 && h != 0
}

func normalizeViewBox(svg []byte) []byte {
	w, h, ok := viewBox(svg)
	if !ok {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Fit rewrites the root element of a rendered tree so it stretches over the
// panel described by p. The XML prologue is dropped, so the result can be
// nested in another SVG document.
func Fit(svg []byte, p Params) []byte {
	w, h, ok := viewBox(svg)
	if !ok {
		return svg
	}
	tag := fmt.Sprintf(`<svg viewBox="0 0 %.2f %.2f" width="%.2f" height="%.2f" preserveAspectRatio="none">`,
		w, h, p.Width, p.Height)
	loc := svgTagRe.FindIndex(svg)
	if loc == nil {
		return svg
	}
	out := make([]byte, 0, len(svg)-loc[0]+len(tag))
	out = append(out, tag...)
	return append(out, svg[loc[1]:]...)
}
