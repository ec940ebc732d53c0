/*
 * histogram.go, part of goPaths.
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
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Histogram is a 1D histogram over fixed dividers, in the style of the
//rest of the library: counts live between consecutive dividers, data
//beyond the dividers is silently dropped.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewHistogram returns a histogram over the given dividers, optionally
//pre-filled with rawdata. It panics on fewer than 2 dividers: such a
//histogram has no bin to put anything in.
func NewHistogram(dividers []float64, rawdata []float64) *Histogram {
	if len(dividers) < 2 {
		panic("goPaths/analysis: A histogram needs at least 2 dividers")
	}
	h := new(Histogram)
	//I prefer to copy the slice to avoid somebody changing it from outside
	h.dividers = make([]float64, len(dividers))
	copy(h.dividers, dividers)
	h.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		h.ReHisto(rawdata)
	}
	return h
}

//ReHisto discards the current counts and re-bins rawdata. Values
//outside the dividers are removed before the call to gonum, which
//panics on them.
func (H *Histogram) ReHisto(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	maxi := sort.SearchFloat64s(data, H.dividers[len(H.dividers)-1])
	mini := sort.SearchFloat64s(data, H.dividers[0])
	if maxi < len(data) {
		data = data[:maxi]
	}
	if mini != 0 {
		data = data[mini:]
	}
	H.normalized = false
	H.total = len(data)
	H.histo = stat.Histogram(nil, H.dividers, data, nil)
}

//AddData adds the given data point(s) to the histogram.
func (H *Histogram) AddData(point ...float64) {
	var norma bool
	if H.normalized {
		norma = true
		H.UnNormalize()
	}
	added := 0
	for _, v := range point {
		for j := 0; j < len(H.dividers)-1; j++ {
			if H.dividers[j] <= v && v < H.dividers[j+1] {
				H.histo[j]++
				added++
				break
			}
		}
	}
	H.total += added
	if norma {
		H.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (H *Histogram) Normalized() bool { return H.normalized }

//Normalize normalizes the histogram
func (H *Histogram) Normalize() { H.normaunnorma(true) }

//UnNormalize un-normalizes the histogram
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	H.normalized = false
	if normalize {
		n = 1 / float64(H.total)
		H.normalized = true
	}
	floats.Scale(n, H.histo)
}

//Total returns the number of data points the histogram has seen.
func (H *Histogram) Total() int { return H.total }

//Sum returns the sum of the bin contents.
func (H *Histogram) Sum() float64 { return floats.Sum(H.histo) }

//View returns the bin contents, without copying.
func (H *Histogram) View() []float64 { return H.histo }

//CopyDividers returns a copy of the dividers.
func (H *Histogram) CopyDividers() []float64 {
	d := make([]float64, len(H.dividers))
	copy(d, H.dividers)
	return d
}

//Mean returns the weighted mean of the bin centers. NaN for an empty
//histogram.
func (H *Histogram) Mean() float64 {
	if H.total == 0 {
		return math.NaN()
	}
	var m, w float64
	for i, v := range H.histo {
		c := 0.5 * (H.dividers[i] + H.dividers[i+1])
		m += c * v
		w += v
	}
	return m / w
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (H *Histogram) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", H.normalized, H.total)
	d := make([]string, 0, len(H.dividers)-1)
	h := make([]string, 0, len(H.dividers)-1)
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

func (H *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: H.normalized,
		Total:      H.total,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
}

func (H *Histogram) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	H.normalized = a.Normalized
	H.total = a.Total
	H.dividers = a.Dividers
	H.histo = a.Histo
	return nil
}
