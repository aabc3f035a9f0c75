package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ev-charging-dashboard/internal/view"
)

// Default PNG canvas size.
const (
	PNGWidth  = 8 * vg.Inch
	PNGHeight = 4 * vg.Inch
)

var namedColors = map[string]color.NRGBA{
	"red":   {R: 255, A: 255},
	"black": {A: 255},
	"white": {R: 255, G: 255, B: 255, A: 255},
}

// parseColor accepts #RRGGBB or a small set of names. Unknown values
// fall back to black.
func parseColor(s string, alpha float64) color.NRGBA {
	c := color.NRGBA{A: 255}
	if named, ok := namedColors[strings.ToLower(s)]; ok {
		c = named
	} else if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			c = color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		}
	}
	if alpha > 0 && alpha < 1 {
		c.A = uint8(math.Round(alpha * 255))
	}
	return c
}

// ChartPNG draws the chart with id from p.
func ChartPNG(w io.Writer, p view.Page, id string) error {
	c, ok := p.FindChart(id)
	if !ok {
		return fmt.Errorf("%w: %q on page %s", ErrUnknownChart, id, p.ID)
	}
	return PNG(w, c, PNGWidth, PNGHeight)
}

// PNG draws c as a PNG image of the given size.
func PNG(w io.Writer, c view.Chart, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	var err error
	switch c.Type {
	case view.ChartLine:
		err = plotLine(p, c)
	case view.ChartBar:
		err = plotBar(p, c)
	case view.ChartHeatmap:
		err = plotHeatmap(p, c)
	default:
		err = fmt.Errorf("unsupported type %q", c.Type)
	}
	if err != nil {
		return fmt.Errorf("plot chart %s: %w", c.ID, err)
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("encode chart %s: %w", c.ID, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart %s: %w", c.ID, err)
	}
	return nil
}

func plotLine(p *plot.Plot, c view.Chart) error {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		pts := make(plotter.XYs, len(s.Values))
		for i, v := range s.Values {
			pts[i] = plotter.XY{X: float64(i), Y: v}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		col := parseColor(s.Color, 0)
		line.Color = col
		line.Width = vg.Points(2)
		p.Add(line)
		if s.Marker {
			points.Shape = draw.CircleGlyph{}
			points.Color = col
			p.Add(points)
		}
		if c.Legend {
			p.Legend.Add(s.Name, line)
		}
	}

	if len(c.Shaded) > 0 && !math.IsInf(lo, 1) {
		pad := (hi - lo) * 0.1
		if pad == 0 {
			pad = 0.05
		}
		lo, hi = lo-pad, hi+pad
		p.Y.Min, p.Y.Max = lo, hi
		for _, r := range c.Shaded {
			poly, err := plotter.NewPolygon(plotter.XYs{
				{X: r.From, Y: lo}, {X: r.To, Y: lo}, {X: r.To, Y: hi}, {X: r.From, Y: hi},
			})
			if err != nil {
				return err
			}
			poly.Color = parseColor(r.Color, r.Alpha)
			poly.LineStyle.Width = 0
			p.Add(poly)
			if c.Legend {
				p.Legend.Add(r.Label, poly)
			}
		}
	}
	if len(c.Categories) > 0 {
		p.NominalX(c.Categories...)
	}
	return nil
}

func plotBar(p *plot.Plot, c view.Chart) error {
	for _, s := range c.Series {
		if len(s.Values) == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(40))
		if err != nil {
			return err
		}
		bars.Color = parseColor(s.Color, 0)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		if c.Legend {
			p.Legend.Add(s.Name, bars)
		}
	}
	if len(c.Categories) > 0 {
		p.NominalX(c.Categories...)
	}
	return nil
}

// grid adapts a view heatmap to plotter.GridXYZ. Missing cells are NaN.
type grid struct {
	hm *view.Heatmap
}

func (g grid) Dims() (c, r int) { return len(g.hm.XLabels), len(g.hm.YLabels) }
func (g grid) X(c int) float64 { return float64(c) }

// Y puts row 0 at the top.
func (g grid) Y(r int) float64 { return float64(len(g.hm.YLabels) - 1 - r) }

func (g grid) Z(c, r int) float64 {
	if r >= len(g.hm.Cells) || c >= len(g.hm.Cells[r]) || g.hm.Cells[r][c] == nil {
		return math.NaN()
	}
	return *g.hm.Cells[r][c]
}

// hexPalette is a palette.Palette built from chart colour strings.
type hexPalette []color.Color

func (h hexPalette) Colors() []color.Color { return h }

func newPalette(colors []string) palette.Palette {
	if len(colors) == 0 {
		return palette.Heat(8, 1)
	}
	hp := make(hexPalette, len(colors))
	for i, s := range colors {
		hp[i] = parseColor(s, 0)
	}
	return hp
}

func plotHeatmap(p *plot.Plot, c view.Chart) error {
	hm := c.Heatmap
	if hm == nil || len(hm.XLabels) == 0 || len(hm.YLabels) == 0 {
		return nil
	}
	g := grid{hm: hm}
	if lo, hi, ok := zRange(g); ok {
		h := plotter.NewHeatMap(g, newPalette(hm.Palette))
		h.NaN = color.Transparent
		if lo == hi {
			hi = lo + 1
		}
		h.Min, h.Max = lo, hi
		p.Add(h)
	}
	p.NominalX(hm.XLabels...)
	p.NominalY(reversed(hm.YLabels)...)
	return nil
}

// zRange returns the bounds of the defined cells of g.
func zRange(g grid) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := g.Z(c, r)
			if math.IsNaN(z) {
				continue
			}
			lo, hi, ok = math.Min(lo, z), math.Max(hi, z), true
		}
	}
	return lo, hi, ok
}

// reversed returns names bottom to top for a top-down row order.
func reversed(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[len(names)-1-i] = n
	}
	return out
}
