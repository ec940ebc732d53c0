/*
 * steps_test.go, part of goPaths.
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

package steps

import (
	"fmt"
	"path/filepath"
	"testing"

	paths "github.com/mherrera/gopaths"
)

func sampleSteps(n int) []*Step {
	r := make([]*Step, 0, n)
	for i := 0; i < n; i++ {
		r = append(r, &Step{
			N:         i + 1,
			Mover:     "shooting-fwd/A->B",
			Ensembles: []string{"A->B"},
			Accepted:  i%3 == 0,
			Length:    20 + i,
			LambdaMax: 0.5 + float64(i)/100,
			Path:      [][]float64{{-0.5, 0}, {0, 0.1}, {0.5, 0}},
		})
	}
	return r
}

//TestRoundTrip writes and reads back a log in every supported
//compression format.
func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"run.steps.zst", "run.steps.gz", "run.steps.fl", "run.steps"} {
		full := filepath.Join(dir, name)
		W, err := NewWriter(full)
		if err != nil {
			Te.Fatal(err)
		}
		in := sampleSteps(25)
		for _, s := range in {
			if err := W.WNext(s); err != nil {
				Te.Fatal(err)
			}
		}
		if W.Wrote() != 25 {
			Te.Error("Wrong written count:", W.Wrote())
		}
		if err := W.Close(); err != nil {
			Te.Fatal(err)
		}
		out, err := ReadAll(full)
		if err != nil {
			Te.Fatal(err)
		}
		if len(out) != len(in) {
			Te.Fatalf("%s: wrote %d steps, read %d", name, len(in), len(out))
		}
		if out[7].N != in[7].N || out[7].LambdaMax != in[7].LambdaMax || len(out[7].Path) != 3 {
			Te.Errorf("%s: step 7 did not survive the round trip: %+v", name, out[7])
		}
		fmt.Println(name, "round trip fine")
	}
}

//TestLastStep checks that the end of a log surfaces as the harmless
//LastStepError, not as a real failure.
func TestLastStep(Te *testing.T) {
	full := filepath.Join(Te.TempDir(), "tiny.steps.zst")
	W, err := NewWriter(full)
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(sampleSteps(1)[0]); err != nil {
		Te.Fatal(err)
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}
	R, err := NewReader(full)
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	if _, err := R.Next(); err != nil {
		Te.Fatal(err)
	}
	_, err = R.Next()
	if err == nil {
		Te.Fatal("Expected an end-of-log error")
	}
	if _, ok := err.(paths.LastStepError); !ok {
		Te.Error("End of log should be a LastStepError, got:", err)
	}
}

func TestWriterMisuse(Te *testing.T) {
	full := filepath.Join(Te.TempDir(), "x.steps")
	W, err := NewWriter(full)
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(nil); err == nil {
		Te.Error("Expected an error for a nil step")
	}
	W.Close()
	if err := W.WNext(sampleSteps(1)[0]); err == nil {
		Te.Error("Expected an error writing after Close")
	}
}
