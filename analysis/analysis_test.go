/*
 * analysis_test.go, part of goPaths.
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

package analysis

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mherrera/gopaths/steps"
)

func fakeLog() []*steps.Step {
	r := make([]*steps.Step, 0, 40)
	for i := 0; i < 40; i++ {
		ens := "A[0]"
		lmax := 0.1 + float64(i%10)*0.05
		if i%2 == 1 {
			ens = "A[1]"
			lmax += 0.2
		}
		r = append(r, &steps.Step{
			N:         i + 1,
			Mover:     "shooting-fwd/" + ens,
			Ensembles: []string{ens},
			Accepted:  i%4 == 0,
			Length:    10 + i%5,
			LambdaMax: lmax,
		})
	}
	return r
}

func TestHistogram(t *testing.T) {
	h := NewHistogram([]float64{0, 1, 2, 3}, []float64{0.5, 0.5, 1.5, 2.5, 5.0, -1.0})
	require.Equal(t, 4, h.Total()) //the out-of-range points are dropped
	assert.Equal(t, []float64{2, 1, 1}, h.View())
	h.AddData(1.2)
	assert.Equal(t, []float64{2, 2, 1}, h.View())
	h.Normalize()
	assert.True(t, h.Normalized())
	assert.InDelta(t, 1.0, h.Sum(), 1e-12)
	h.AddData(0.1) //AddData keeps a normalized histogram normalized
	assert.InDelta(t, 1.0, h.Sum(), 1e-12)
	h.UnNormalize()
	assert.Equal(t, []float64{3, 2, 1}, h.View())
	assert.InDelta(t, 1.1666, h.Mean(), 1e-3)

	b, err := json.Marshal(h)
	require.NoError(t, err)
	h2 := new(Histogram)
	require.NoError(t, json.Unmarshal(b, h2))
	assert.Equal(t, h.View(), h2.View())
	assert.Equal(t, h.Total(), h2.Total())

	assert.Panics(t, func() { NewHistogram([]float64{1}, nil) })
}

func TestAcceptance(t *testing.T) {
	acc := Acceptance(fakeLog())
	require.Len(t, acc, 2)
	a0 := acc["shooting-fwd/A[0]"]
	assert.Equal(t, 20, a0.Trials)
	assert.Equal(t, 10, a0.Accepted)
	assert.InDelta(t, 0.5, a0.Ratio(), 1e-12)
	a1 := acc["shooting-fwd/A[1]"]
	assert.Equal(t, 20, a1.Trials)
	assert.Equal(t, 0, a1.Accepted)

	var buf bytes.Buffer
	PrintAcceptance(&buf, acc)
	assert.Contains(t, buf.String(), "shooting-fwd/A[0]")
	assert.Contains(t, buf.String(), "ratio 0.500")
}

func TestSelectionAndHistograms(t *testing.T) {
	st := fakeLog()
	lm := Lambdas(st, "A[0]")
	require.Len(t, lm, 20)
	assert.InDelta(t, 0.1, lm[0], 1e-12)
	all := Lambdas(st, "")
	assert.Len(t, all, 40)

	h, err := LengthHistogram(st, "A[0]", 5)
	require.NoError(t, err)
	assert.Equal(t, 20, h.Total())

	_, err = LambdaHistogram(st, "no-such-ensemble", 5)
	assert.Error(t, err)
	_, err = LengthHistogram(st, "", 0)
	assert.Error(t, err)
}

func TestCrossingCurve(t *testing.T) {
	st := fakeLog()
	//A[0] lambda-max runs 0.10 to 0.50 in steps of 0.10, four steps each
	grid := []float64{0.0, 0.3, 0.6}
	c, err := CrossingCurve(st, "A[0]", grid)
	require.NoError(t, err)
	require.Len(t, c, 3)
	assert.Equal(t, 1.0, c[0])
	assert.InDelta(t, 0.6, c[1], 1e-12) //0.30, 0.40 and 0.50 are 3 of the 5 levels
	assert.Equal(t, 0.0, c[2])
	//monotone non-increasing over any sorted grid
	for i := 1; i < len(c); i++ {
		assert.LessOrEqual(t, c[i], c[i-1])
	}

	_, err = CrossingCurve(st, "A[0]", nil)
	assert.Error(t, err)
	_, err = CrossingCurve(st, "nope", grid)
	assert.Error(t, err)
}
