// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package benchparse reads timing results from the textual output of
// "go test -bench".
//
// It understands the standard benchmark result line,
//
//	BenchmarkRedisGet-8   	 1000000	       250 ns/op
//
// and ignores everything else. Only the ns/op measurement is kept;
// other value/unit pairs on the same line (B/op, allocs/op, MB/s)
// are skipped.
package benchparse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// A Result is a single benchmark measurement parsed from a results
// file.
type Result struct {
	// Name is the benchmark name with the "Benchmark" prefix and
	// any trailing "-<GOMAXPROCS>" suffix removed, e.g.
	// "RedisGet" for "BenchmarkRedisGet-8".
	Name string

	// Iters is the reported iteration count.
	Iters int

	// NsPerOp is the reported ns/op measurement.
	NsPerOp float64

	fileName string
	line     int
}

// Pos returns the file name and 1-based line number this result was
// read from. It is purely diagnostic.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// A Reader reads benchmark results from a text log.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership
// of the Result it returns; a caller should copy anything it needs to
// retain across calls to Scan.
type Reader struct {
	s      *bufio.Scanner
	err    error
	result Result
}

// NewReader constructs a Reader that parses benchmark results from r.
// fileName is used in positions reported by Result.Pos.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the Reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.err = nil
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.result = Result{fileName: fileName}
}

// Scan advances the Reader to the next benchmark result and reports
// whether one was found. Lines that do not parse as a benchmark
// result are skipped silently; a malformed file simply yields fewer
// results. When Scan returns false the caller should check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.result.line++
		if r.parseLine(r.s.Text()) {
			return true
		}
	}
	r.err = r.s.Err()
	return false
}

// Result returns the result read by the last call to Scan.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// parseLine parses line as a benchmark result, updating r.result and
// reporting whether the line was one.
func (r *Reader) parseLine(line string) bool {
	if !strings.HasPrefix(line, "Benchmark") {
		return false
	}
	f := strings.Fields(line)
	if len(f) < 4 {
		// "go test -v" prints the bare benchmark name when the
		// benchmark starts; there is nothing to keep.
		return false
	}
	iters, err := strconv.Atoi(f[1])
	if err != nil || iters <= 0 {
		return false
	}
	// Find the ns/op measurement among the value/unit pairs.
	for i := 2; i+2 <= len(f); i += 2 {
		if f[i+1] != "ns/op" {
			continue
		}
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return false
		}
		r.result.Name = stripGomaxprocs(strings.TrimPrefix(f[0], "Benchmark"))
		r.result.Iters = iters
		r.result.NsPerOp = val
		return true
	}
	return false
}

// stripGomaxprocs removes a trailing "-<GOMAXPROCS>" suffix from a
// benchmark name, if present. The suffix must be all digits.
func stripGomaxprocs(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		c := name[i]
		if c == '-' && i < len(name)-1 {
			return name[:i]
		}
		if c < '0' || c > '9' {
			break
		}
	}
	return name
}
