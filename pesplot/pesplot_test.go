/*
 * pesplot_test.go, part of goPaths.
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
 */

package pesplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	paths "github.com/mherrera/gopaths"
	"github.com/mherrera/gopaths/toys"
)

func TestGrid(Te *testing.T) {
	pes := toys.DoubleWell()
	G, err := NewGrid(pes.V, -1.2, 1.2, 101, -1.2, 1.2, 101)
	if err != nil {
		Te.Fatal(err)
	}
	c, r := G.Dims()
	if c != 101 || r != 101 {
		Te.Error("Wrong grid dims:", c, r)
	}
	if G.X(0) != -1.2 || G.X(100) != 1.2 || G.Y(0) != -1.2 {
		Te.Error("Grid axes are off:", G.X(0), G.X(100), G.Y(0))
	}
	//the double well is symmetric in x
	if G.Z(10, 50) != G.Z(90, 50) {
		Te.Error("Double well grid lost its x symmetry")
	}
	if G.Min() >= G.Max() {
		Te.Error("Degenerate grid range:", G.Min(), G.Max())
	}
	if _, err := NewGrid(pes.V, 1, -1, 10, -1, 1, 10); err == nil {
		Te.Error("Expected an error for a backwards range")
	}
}

//TestContourPNG draws the two-channel surface with a couple of paths on
//top and saves it, i.e. the full tutorial figure.
func TestContourPNG(Te *testing.T) {
	pes := toys.TwoChannel()
	G, err := NewGrid(pes.V, -1.2, 1.2, 120, -1.2, 1.2, 120)
	if err != nil {
		Te.Fatal(err)
	}
	p, err := Contour(G, 12, "Two-channel PES")
	if err != nil {
		Te.Fatal(err)
	}
	t1 := paths.Trajectory{
		paths.NewSnapshot([]float64{-0.5, 0.5}, []float64{0, 0}),
		paths.NewSnapshot([]float64{0, 0.6}, []float64{0, 0}),
		paths.NewSnapshot([]float64{0.5, -0.5}, []float64{0, 0}),
	}
	t2 := t1.Reverse()
	if err := AddPath(p, t1, 0, 2); err != nil {
		Te.Error(err)
	}
	if err := AddPath(p, t2, 1, 2); err != nil {
		Te.Error(err)
	}
	name := filepath.Join(Te.TempDir(), "twochannel.png")
	if err := Save(p, 5, name); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil || fi.Size() == 0 {
		Te.Error("The PNG was not written:", err)
	}
	fmt.Println("wrote", name, fi.Size(), "bytes")
}

func TestColors(Te *testing.T) {
	cases := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{90, 0, 0.5, 127, 127, 127},
	}
	for _, c := range cases {
		r, g, b := hsv(c.h, c.s, c.v)
		if r != c.r || g != c.g || b != c.b {
			Te.Errorf("hsv(%g,%g,%g) = (%d,%d,%d), want (%d,%d,%d)", c.h, c.s, c.v, r, g, b, c.r, c.g, c.b)
		}
	}
	//paths of one figure must be told apart
	r0, g0, b0 := colors(0, 3)
	r1, g1, b1 := colors(1, 3)
	if r0 == r1 && g0 == g1 && b0 == b1 {
		Te.Error("Consecutive path colors are identical")
	}
}

func TestBadArgs(Te *testing.T) {
	if _, err := Contour(nil, 10, "x"); err == nil {
		Te.Error("Expected an error for a nil grid")
	}
	p := basicPlot("t")
	if err := AddPath(p, nil, 0, 1); err == nil {
		Te.Error("Expected an error for an empty trajectory")
	}
}
