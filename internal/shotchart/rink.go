package shotchart

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Rink geometry in feet, origin at center ice.
const (
	rinkHalfLength   = 100.0
	rinkHalfWidth    = 42.5
	rinkCornerRadius = 28.0
	blueLineX        = 25.0
	goalLineX        = 89.0
	faceoffRadius    = 15.0
	faceoffDotX      = 69.0
	faceoffDotY      = 22.0
	creaseRadius     = 6.0
	arcSegments      = 48
)

// arc samples a circle of radius r around (cx, cy) between two angles in degrees.
func arc(cx, cy, r, fromDeg, toDeg float64) plotter.XYs {
	pts := make(plotter.XYs, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		theta := (fromDeg + (toDeg-fromDeg)*float64(i)/arcSegments) * math.Pi / 180
		pts = append(pts, plotter.XY{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
	}
	return pts
}

func boardsOutline() plotter.XYs {
	cx := rinkHalfLength - rinkCornerRadius
	cy := rinkHalfWidth - rinkCornerRadius
	var pts plotter.XYs
	pts = append(pts, arc(cx, cy, rinkCornerRadius, 0, 90)...)
	pts = append(pts, arc(-cx, cy, rinkCornerRadius, 90, 180)...)
	pts = append(pts, arc(-cx, -cy, rinkCornerRadius, 180, 270)...)
	pts = append(pts, arc(cx, -cy, rinkCornerRadius, 270, 360)...)
	return append(pts, pts[0])
}

// goalLineHalfSpan is where the goal line meets the rounded boards.
func goalLineHalfSpan() float64 {
	cx := rinkHalfLength - rinkCornerRadius
	cy := rinkHalfWidth - rinkCornerRadius
	dx := goalLineX - cx
	if dx <= 0 {
		return rinkHalfWidth
	}
	return cy + math.Sqrt(rinkCornerRadius*rinkCornerRadius-dx*dx)
}

func verticalLine(x, halfSpan float64) plotter.XYs {
	return plotter.XYs{{X: x, Y: -halfSpan}, {X: x, Y: halfSpan}}
}

type rinkLine struct {
	pts   plotter.XYs
	color color.Color
	width vg.Length
}

func rinkLines() []rinkLine {
	goalSpan := goalLineHalfSpan()
	lines := []rinkLine{
		{pts: boardsOutline(), color: colornames.Black, width: vg.Points(2)},
		{pts: verticalLine(0, rinkHalfWidth), color: colornames.Red, width: vg.Points(2)},
		{pts: verticalLine(-blueLineX, rinkHalfWidth), color: colornames.Blue, width: vg.Points(2)},
		{pts: verticalLine(blueLineX, rinkHalfWidth), color: colornames.Blue, width: vg.Points(2)},
		{pts: verticalLine(-goalLineX, goalSpan), color: colornames.Red, width: vg.Points(1)},
		{pts: verticalLine(goalLineX, goalSpan), color: colornames.Red, width: vg.Points(1)},
		{pts: arc(0, 0, faceoffRadius, 0, 360), color: colornames.Blue, width: vg.Points(1)},
		{pts: arc(goalLineX, 0, creaseRadius, 90, 270), color: colornames.Red, width: vg.Points(1)},
		{pts: arc(-goalLineX, 0, creaseRadius, -90, 90), color: colornames.Red, width: vg.Points(1)},
	}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			lines = append(lines, rinkLine{
				pts:   arc(sx*faceoffDotX, sy*faceoffDotY, faceoffRadius, 0, 360),
				color: colornames.Red,
				width: vg.Points(1),
			})
		}
	}
	return lines
}

// addRink draws the boards, center, blue and goal lines, faceoff circles and creases.
func addRink(p *plot.Plot) error {
	for _, rl := range rinkLines() {
		l, err := plotter.NewLine(rl.pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = rl.color
		l.LineStyle.Width = rl.width
		p.Add(l)
	}
	return nil
}
