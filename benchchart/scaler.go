// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchchart

import "fmt"

// A Scaler formats a chart measurement for display.
type Scaler func(float64) string

// Microseconds formats a microsecond latency the way bar labels show
// it, e.g. "12.3µs".
func Microseconds(us float64) string {
	return fmt.Sprintf("%.1fµs", us)
}

// FormatOps formats an operations-per-second value, switching to a K
// suffix at 1000: 999 is "999", 1234.5 is "1.2K".
func FormatOps(ops float64) string {
	if ops >= 1000 {
		return fmt.Sprintf("%.1fK", ops/1000)
	}
	return fmt.Sprintf("%.0f", ops)
}

// OpsPerSecond converts a mean ns/op latency into operations per
// second. An unmeasured (zero) latency stays zero rather than
// dividing by it.
func OpsPerSecond(nsPerOp float64) float64 {
	if nsPerOp <= 0 {
		return 0
	}
	return 1e9 / nsPerOp
}
