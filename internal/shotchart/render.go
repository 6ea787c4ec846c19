package shotchart

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/imageenc"
)

// Default figure size.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 5.5 * vg.Inch
)

// Visible chart window; the bottom margin leaves room for the detail line.
const (
	viewMinX = -rinkHalfLength - 2
	viewMaxX = rinkHalfLength + 2
	viewMinY = -60.0
	viewMaxY = rinkHalfWidth + 3
)

// RenderOptions controls optional chart decorations.
type RenderOptions struct {
	ShowShotAttempts bool
	Width            vg.Length
	Height           vg.Length
}

func (o RenderOptions) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// NewPlot builds the chart figure for a record without encoding it.
func NewPlot(rec games.GameRecord, opts RenderOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title(rec)
	p.HideAxes()
	p.X.Min, p.X.Max = viewMinX, viewMaxX
	p.Y.Min, p.Y.Max = viewMinY, viewMaxY

	if err := addRink(p); err != nil {
		return nil, fmt.Errorf("draw rink: %w", err)
	}
	if err := addShots(p, rec.Charts.ShotChart.Data); err != nil {
		return nil, fmt.Errorf("draw shots: %w", err)
	}

	detail, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: DetailX, Y: DetailY}},
		Labels: []string{DetailLine(rec)},
	})
	if err != nil {
		return nil, fmt.Errorf("draw detail line: %w", err)
	}
	for i := range detail.TextStyle {
		detail.TextStyle[i].XAlign = draw.XCenter
	}
	p.Add(detail)

	if opts.ShowShotAttempts {
		if err := addAnnotations(p, Annotations(rec.Charts.ShotChart.Data)); err != nil {
			return nil, fmt.Errorf("draw annotations: %w", err)
		}
	}
	return p, nil
}

// Render builds the chart and returns it as a PNG-producing figure.
func Render(rec games.GameRecord, opts RenderOptions) (imageenc.FigureImage, error) {
	p, err := NewPlot(rec, opts)
	if err != nil {
		return imageenc.FigureImage{}, err
	}
	w, h := opts.size()
	fig, err := p.WriterTo(w, h, "png")
	if err != nil {
		return imageenc.FigureImage{}, fmt.Errorf("encode figure: %w", err)
	}
	return imageenc.FigureImage{Figure: fig}, nil
}

// addShots adds one scatter per distinct marker style, keeping first-seen order.
func addShots(p *plot.Plot, points []games.ShotPoint) error {
	type styleKey struct {
		marker string
		color  string
		size   games.MarkerSize
	}
	var order []styleKey
	groups := map[styleKey]plotter.XYs{}
	for _, pt := range points {
		k := styleKey{marker: pt.MarkerType, color: pt.Color, size: pt.MarkerSize}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], plotter.XY{X: pt.X, Y: pt.Y})
	}

	for _, k := range order {
		s, err := plotter.NewScatter(groups[k])
		if err != nil {
			return err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  namedColor(k.color),
			Radius: vg.Points(float64(k.size) / 2),
			Shape:  glyphFor(k.marker),
		}
		p.Add(s)
	}
	return nil
}

func addAnnotations(p *plot.Plot, annotations []Annotation) error {
	if len(annotations) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(annotations))
	texts := make([]string, len(annotations))
	for i, a := range annotations {
		xys[i] = plotter.XY{X: a.X, Y: a.Y}
		texts[i] = a.Text
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labels)
	return nil
}

func glyphFor(marker string) draw.GlyphDrawer {
	if marker == MarkerGoal {
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}

func namedColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Black
}
