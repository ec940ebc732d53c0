/*
 * steps.go, part of goPaths.
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

//Package steps reads and writes goPaths step logs: one JSON document
//per Monte Carlo step, compressed according to the file extension.
//.zst gets zstd, .gz gets gzip, .fl gets flate and anything else is
//written raw. The format is deliberately dumb so any language with a
//JSON parser can consume a log.
package steps

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	paths "github.com/mherrera/gopaths"
)

//Step is one Monte Carlo step as it goes to disk. Path carries the
//positions of the active path of the move's first ensemble and may be
//omitted to keep logs small.
type Step struct {
	N         int         `json:"n"`
	Mover     string      `json:"mover"`
	Ensembles []string    `json:"ensembles"`
	Accepted  bool        `json:"accepted"`
	Length    int         `json:"length"`
	LambdaMax float64     `json:"lambda_max"`
	Path      [][]float64 `json:"path,omitempty"`
}

//Writer appends steps to a log file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	enc       *json.Encoder
	filename  string
	writeable bool
	n         int
}

//NewWriter creates (truncating) the log file name and returns a writer
//to it, compressing as the extension dictates.
func NewWriter(name string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.filename = name
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.BestCompression) }
	rawwriter := func(a io.Writer) (io.WriteCloser, error) { return nopWriteCloser{bufio.NewWriter(a)}, nil }

	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch {
	case strings.HasSuffix(name, ".zst"):
		AnyNewWriter = zstdwriter
	case strings.HasSuffix(name, ".gz"):
		AnyNewWriter = gzipwriter
	case strings.HasSuffix(name, ".fl"):
		AnyNewWriter = flatewriter
	default:
		AnyNewWriter = rawwriter
	}
	W.h, err = AnyNewWriter(W.f)
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't build the compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.enc = json.NewEncoder(W.h)
	W.writeable = true
	return W, nil
}

//WNext appends one step to the log.
func (W *Writer) WNext(s *Step) error {
	if !W.writeable {
		return Error{LogUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if s == nil {
		return Error{NilStep, W.filename, []string{"WNext"}, true}
	}
	if err := W.enc.Encode(s); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.n++
	return nil
}

//Wrote returns the number of steps written so far.
func (W *Writer) Wrote() int { return W.n }

//Close flushes the compressor and closes the file. The writer can not
//be used after this call.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	if err := W.h.Close(); err != nil {
		W.f.Close()
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	return W.f.Close()
}

type nopWriteCloser struct {
	*bufio.Writer
}

func (n nopWriteCloser) Close() error {
	return n.Flush()
}

//Reader iterates over the steps of a log file.
type Reader struct {
	f        *os.File
	h        io.ReadCloser
	dec      *json.Decoder
	filename string
	readable bool
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//NewReader opens the log file name for reading, decompressing as the
//extension dictates.
func NewReader(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.filename = name
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	flatereader := func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	rawreader := func(a io.Reader) (io.ReadCloser, error) { return io.NopCloser(bufio.NewReader(a)), nil }

	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch {
	case strings.HasSuffix(name, ".zst"):
		AnyNewReader = zstdreader
	case strings.HasSuffix(name, ".gz"):
		AnyNewReader = gzreader
	case strings.HasSuffix(name, ".fl"):
		AnyNewReader = flatereader
	default:
		AnyNewReader = rawreader
	}
	R.h, err = AnyNewReader(R.f)
	if err != nil {
		R.f.Close()
		return nil, Error{"Can't build the decompressor: " + err.Error(), name, []string{"NewReader"}, true}
	}
	R.dec = json.NewDecoder(R.h)
	R.readable = true
	return R, nil
}

//Next returns the next step of the log. At the end of the log it
//returns a harmless lastStepError, which satisfies paths.LastStepError.
func (R *Reader) Next() (*Step, error) {
	if !R.readable {
		return nil, Error{LogUnIniRead, R.filename, []string{"Next"}, true}
	}
	s := new(Step)
	err := R.dec.Decode(s)
	if err == io.EOF {
		return nil, lastStepError{R.filename}
	}
	if err != nil {
		return nil, Error{err.Error(), R.filename, []string{"Next"}, true}
	}
	return s, nil
}

//Close closes the log. The reader can not be used after this call.
func (R *Reader) Close() {
	if R == nil || !R.readable {
		return
	}
	R.readable = false
	R.h.Close()
	R.f.Close()
}

//ReadAll slurps a whole step log. Convenience for analysis.
func ReadAll(name string) ([]*Step, error) {
	R, err := NewReader(name)
	if err != nil {
		return nil, err
	}
	defer R.Close()
	var r []*Step
	for {
		s, err := R.Next()
		if err != nil {
			if _, ok := err.(paths.LastStepError); ok {
				break
			}
			return nil, err
		}
		r = append(r, s)
	}
	return r, nil
}

//Errors

//Error is the concrete error type of the package. It implements
//paths.StepError.
type Error struct {
	message  string
	filename string //the log file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("step log %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing log was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "steps") associated to the error
func (err Error) Format() string { return "steps" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	LogUnIniRead  = "Log object uninitialized to read"
	LogUnIniWrite = "Log object uninitialized to write"
	UnableToOpen  = "Unable to open file"
	NilStep       = "Given nil step"
)

//lastStepError signals the normal end of a log.
type lastStepError struct {
	filename string
}

func (err lastStepError) Error() string { return "EOF" }

func (err lastStepError) Decorate(deco string) []string { return nil }

func (err lastStepError) FileName() string { return err.filename }

func (err lastStepError) Format() string { return "steps" }

func (err lastStepError) Critical() bool { return false }

func (err lastStepError) NormalLastStepTermination() {}
