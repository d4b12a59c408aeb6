// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	const input = `goos: linux
goarch: amd64
pkg: github.com/veyselaksin/strigo/v2/tests/redis
BenchmarkRedisConsume
BenchmarkRedisConsume-8   	   10000	    105193 ns/op	     512 B/op	      12 allocs/op
BenchmarkRedisGet-8       	 1000000	       250 ns/op
BenchmarkRedisGet-8       	 1000000	       250 ns/op
BenchmarkRedisReset-8     	   20000	     98051.5 ns/op
some stray line that is not a benchmark
BenchmarkBroken-8         	 garbage	       100 ns/op
PASS
ok  	github.com/veyselaksin/strigo/v2/tests/redis	12.345s
`
	r := NewReader(strings.NewReader(input), "redis_results.txt")
	type want struct {
		name    string
		iters   int
		nsPerOp float64
		line    int
	}
	wants := []want{
		{"RedisConsume", 10000, 105193, 5},
		{"RedisGet", 1000000, 250, 6},
		{"RedisGet", 1000000, 250, 7},
		{"RedisReset", 20000, 98051.5, 8},
	}
	for i, w := range wants {
		if !r.Scan() {
			t.Fatalf("Scan ended after %d results, want %d", i, len(wants))
		}
		res := r.Result()
		if res.Name != w.name || res.Iters != w.iters || res.NsPerOp != w.nsPerOp {
			t.Errorf("result %d: got %q %d %v, want %q %d %v",
				i, res.Name, res.Iters, res.NsPerOp, w.name, w.iters, w.nsPerOp)
		}
		if file, line := res.Pos(); file != "redis_results.txt" || line != w.line {
			t.Errorf("result %d: got pos %s:%d, want redis_results.txt:%d", i, file, line, w.line)
		}
	}
	if r.Scan() {
		t.Errorf("unexpected extra result %+v", r.Result())
	}
	if err := r.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReaderNoNsPerOp(t *testing.T) {
	// A line with measurements but no ns/op pair yields nothing.
	const input = "BenchmarkRedisGet-8 1000000 56.63 MB/s\n"
	r := NewReader(strings.NewReader(input), "test")
	if r.Scan() {
		t.Errorf("unexpected result %+v", r.Result())
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""), "test")
	if r.Scan() {
		t.Errorf("unexpected result %+v", r.Result())
	}
	if err := r.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStripGomaxprocs(t *testing.T) {
	test := func(name, want string) {
		t.Helper()
		if got := stripGomaxprocs(name); got != want {
			t.Errorf("stripGomaxprocs(%q) = %q, want %q", name, got, want)
		}
	}
	test("RedisGet-8", "RedisGet")
	test("RedisGet-16", "RedisGet")
	test("RedisGet", "RedisGet")
	test("RedisGet-", "RedisGet-")
	test("Redis-Get", "Redis-Get")
	test("Consume-8x", "Consume-8x")
}
