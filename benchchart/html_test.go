// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewReport(t *testing.T) {
	rep := NewReport(testRedis, testMemcached)
	if got, want := len(rep.Rows), len(Operations); got != want {
		t.Fatalf("got %d rows, want %d", got, want)
	}

	get := rep.Rows[1]
	if get.Operation != "Get" {
		t.Fatalf("row 1 is %q, want Get", get.Operation)
	}
	if get.RedisLatency != "0.2µs" {
		t.Errorf("Redis Get latency = %q, want 0.2µs", get.RedisLatency)
	}
	if get.RedisOps != "4000.0K" {
		t.Errorf("Redis Get ops = %q, want 4000.0K", get.RedisOps)
	}

	// Memcached has no Reset measurement: the row stays, its
	// cells are blank.
	reset := rep.Rows[2]
	if reset.MemcachedLatency != "" || reset.MemcachedOps != "" {
		t.Errorf("Memcached Reset cells = %q, %q, want blank", reset.MemcachedLatency, reset.MemcachedOps)
	}
}

func TestFormatHTML(t *testing.T) {
	var buf bytes.Buffer
	FormatHTML(&buf, NewReport(testRedis, testMemcached))
	out := buf.String()

	for _, want := range []string{"<table", "Consume", "Get", "Reset", "MixedOperations", "0.2µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}
