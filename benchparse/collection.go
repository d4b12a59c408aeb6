// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-moremath/stats"
)

// A Collection accumulates ns/op samples grouped by benchmark name.
// The zero value is ready to use.
type Collection struct {
	// Names holds the benchmark names in order of first appearance.
	Names []string

	// Samples maps each benchmark name to its observed ns/op
	// values, in file order.
	Samples map[string][]float64
}

// add records one sample for name.
func (c *Collection) add(name string, nsPerOp float64) {
	if c.Samples == nil {
		c.Samples = make(map[string][]float64)
	}
	if _, ok := c.Samples[name]; !ok {
		c.Names = append(c.Names, name)
	}
	c.Samples[name] = append(c.Samples[name], nsPerOp)
}

// Add reads benchmark results from r and accumulates their ns/op
// samples. name is used in error messages; it is purely diagnostic.
func (c *Collection) Add(r io.Reader, name string) error {
	br := NewReader(r, name)
	for br.Scan() {
		res := br.Result()
		c.add(res.Name, res.NsPerOp)
	}
	if err := br.Err(); err != nil {
		return fmt.Errorf("reading %s: %v", name, err)
	}
	return nil
}

// AddFile reads benchmark results from the named file. A benchmark
// absent from the file yields no entry; a missing file is an error.
func (c *Collection) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Add(f, path)
}

// Means returns the arithmetic mean ns/op per benchmark name.
func (c *Collection) Means() map[string]float64 {
	means := make(map[string]float64, len(c.Samples))
	for name, values := range c.Samples {
		means[name] = stats.Mean(values)
	}
	return means
}
