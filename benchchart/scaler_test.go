// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchchart

import "testing"

func TestMicroseconds(t *testing.T) {
	test := func(us float64, want string) {
		t.Helper()
		if got := Microseconds(us); got != want {
			t.Errorf("Microseconds(%v) = %q, want %q", us, got, want)
		}
	}
	test(0.25, "0.2µs")
	test(12.34, "12.3µs")
	test(105.193, "105.2µs")
}

func TestFormatOps(t *testing.T) {
	test := func(ops float64, want string) {
		t.Helper()
		if got := FormatOps(ops); got != want {
			t.Errorf("FormatOps(%v) = %q, want %q", ops, got, want)
		}
	}
	test(0, "0")
	test(999, "999")
	test(999.4, "999")
	test(1000, "1.0K")
	test(1234.5, "1.2K")
	test(4000000, "4000.0K")
}

func TestOpsPerSecond(t *testing.T) {
	test := func(nsPerOp, want float64) {
		t.Helper()
		if got := OpsPerSecond(nsPerOp); got != want {
			t.Errorf("OpsPerSecond(%v) = %v, want %v", nsPerOp, got, want)
		}
	}
	// 1ms per op is exactly 1000 ops/second.
	test(1e6, 1000)
	test(250, 4e6)
	test(0, 0)
	test(-1, 0)
}
