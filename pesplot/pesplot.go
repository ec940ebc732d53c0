/*
 * pesplot.go, part of goPaths.
 *
 * Copyright 2026 Marcela Herrera <mherrera{at}quimDOTusachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goPaths is developed at the theoretical chemistry group,
 * Universidad de Santiago, Chile.
 *
 */

//Package pesplot draws 2D toy potential energy surfaces as contour
//plots and overlays sampled paths on them.
package pesplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	paths "github.com/mherrera/gopaths"
)

//Grid is a potential evaluated on a regular grid. It implements
//plotter.GridXYZ so it can feed contour and heat-map plotters directly.
type Grid struct {
	xs, ys   []float64
	z        *mat.Dense //ny rows, nx columns
	min, max float64
}

//NewGrid evaluates f on an nx by ny regular grid over the given
//rectangle.
func NewGrid(f func(x, y float64) float64, xmin, xmax float64, nx int, ymin, ymax float64, ny int) (*Grid, error) {
	if f == nil {
		return nil, fmt.Errorf("goPaths/pesplot: Given a nil function")
	}
	if nx < 2 || ny < 2 || xmin >= xmax || ymin >= ymax {
		return nil, fmt.Errorf("goPaths/pesplot: Bad grid: %d x %d over [%g,%g]x[%g,%g]", nx, ny, xmin, xmax, ymin, ymax)
	}
	G := new(Grid)
	G.xs = floats.Span(make([]float64, nx), xmin, xmax)
	G.ys = floats.Span(make([]float64, ny), ymin, ymax)
	G.z = mat.NewDense(ny, nx, nil)
	for r, y := range G.ys {
		for c, x := range G.xs {
			v := f(x, y)
			if r == 0 && c == 0 {
				G.min, G.max = v, v
			}
			if v < G.min {
				G.min = v
			}
			if v > G.max {
				G.max = v
			}
			G.z.Set(r, c, v)
		}
	}
	return G, nil
}

//Dims returns the number of columns and rows of the grid.
func (G *Grid) Dims() (c, r int) { return len(G.xs), len(G.ys) }

//Z returns the value at column c, row r.
func (G *Grid) Z(c, r int) float64 { return G.z.At(r, c) }

//X returns the x coordinate of column c.
func (G *Grid) X(c int) float64 { return G.xs[c] }

//Y returns the y coordinate of row r.
func (G *Grid) Y(r int) float64 { return G.ys[r] }

//Min returns the smallest value on the grid.
func (G *Grid) Min() float64 { return G.min }

//Max returns the largest value on the grid.
func (G *Grid) Max() float64 { return G.max }

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	return p
}

//Contour returns a contour plot of the grid with the given number of
//levels, evenly spaced between the grid minimum and maximum.
func Contour(G *Grid, levels int, title string) (*plot.Plot, error) {
	if G == nil {
		return nil, fmt.Errorf("goPaths/pesplot: Given a nil grid")
	}
	if levels < 2 {
		return nil, fmt.Errorf("goPaths/pesplot: At least 2 contour levels are needed, got %d", levels)
	}
	p := basicPlot(title)
	//the extremes themselves draw as degenerate contours, so we stay
	//strictly inside them.
	l := floats.Span(make([]float64, levels+2), G.min, G.max)[1 : levels+1]
	c := plotter.NewContour(G, l, moreland.SmoothBlueRed().Palette(levels))
	p.Add(c)
	return p, nil
}

//AddPath overlays a trajectory on the plot as a thin line plus scatter
//points. key and total color the path as one of total families, the
//same scale for all paths of a figure.
func AddPath(p *plot.Plot, T paths.Trajectory, key, total int) error {
	if p == nil || len(T) == 0 {
		return fmt.Errorf("goPaths/pesplot: Given a nil plot or an empty trajectory")
	}
	pts := make(plotter.XYs, 0, len(T))
	for _, s := range T {
		if s.Dim() < 2 {
			return fmt.Errorf("goPaths/pesplot: Can only plot 2D snapshots")
		}
		pts = append(pts, plotter.XY{X: s.Pos[0], Y: s.Pos[1]})
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	r, g, b := colors(key, total)
	c := color.RGBA{R: r, G: g, B: b, A: 255}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(0.5)
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(1)
	p.Add(l, s)
	return nil
}

//Save writes the plot to the file name, sized size x size inches. The
//format follows the extension, as in gonum/plot.
func Save(p *plot.Plot, size float64, name string) error {
	if p == nil {
		return fmt.Errorf("goPaths/pesplot: Given a nil plot")
	}
	return p.Save(vg.Length(size)*vg.Inch, vg.Length(size)*vg.Inch, name)
}
