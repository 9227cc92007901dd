// internal/output/svg.go
package output

import (
	"fmt"
	"io"

	"kclust/pkg/api"
)

const (
	svgMargin    = 40.0
	svgSlotWidth = 80.0
	svgPlotH     = 520.0
	svgLabelH    = 140.0
)

// WriteSVG renders the layout's line segments and leaf labels as a
// standalone SVG document. Plot y grows upward (merge height), SVG y grows
// downward, so heights are flipped around the baseline.
func WriteSVG(w io.Writer, l api.LayoutV1, title string) error {
	nLeaves := len(l.Labels)
	if nLeaves == 0 {
		return fmt.Errorf("svg: layout has no leaves")
	}
	width := 2*svgMargin + float64(nLeaves-1)*svgSlotWidth
	if width < 2*svgMargin+svgSlotWidth {
		width = 2*svgMargin + svgSlotWidth
	}
	height := 2*svgMargin + svgPlotH + svgLabelH

	maxH := l.MaxHeight
	if maxH == 0 {
		maxH = 1 // degenerate tree: everything merged at height 0
	}
	x := func(slot float64) float64 { return svgMargin + slot*svgSlotWidth }
	y := func(h float64) float64 { return svgMargin + (1-h/maxH)*svgPlotH }

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		width, height, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"  <rect width=\"100%%\" height=\"100%%\" fill=\"white\"/>\n"); err != nil {
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintf(w,
			"  <text x=\"%.1f\" y=\"%.1f\" font-family=\"sans-serif\" font-size=\"16\" text-anchor=\"middle\">%s</text>\n",
			width/2, svgMargin/2+6, escapeXML(title)); err != nil {
			return err
		}
	}
	for _, s := range l.Segments {
		if _, err := fmt.Fprintf(w,
			"  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"steelblue\" stroke-width=\"1.5\"/>\n",
			x(s.X1), y(s.Y1), x(s.X2), y(s.Y2)); err != nil {
			return err
		}
	}
	base := y(0) + 14
	for _, lb := range l.Labels {
		if _, err := fmt.Fprintf(w,
			"  <text x=\"%.2f\" y=\"%.2f\" font-family=\"sans-serif\" font-size=\"12\" text-anchor=\"end\" transform=\"rotate(-60 %.2f %.2f)\">%s</text>\n",
			x(lb.X), base, x(lb.X), base, escapeXML(lb.Text)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func escapeXML(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		case '"':
			out = append(out, "&quot;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
