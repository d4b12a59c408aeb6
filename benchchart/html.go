// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"

	"github.com/google/safehtml/template"
)

// A Report is the data behind the HTML summary table: one row per
// operation with both backends' mean latency and derived throughput.
type Report struct {
	Rows []ReportRow
}

// A ReportRow holds the formatted measurements for one operation.
// Unmeasured cells are empty strings.
type ReportRow struct {
	Operation        string
	RedisLatency     string
	MemcachedLatency string
	RedisOps         string
	MemcachedOps     string
}

// NewReport builds a Report from the averaged ns/op results for both
// backends. Operations missing from both maps still get a row, with
// all cells blank, so the table shape is stable across inputs.
func NewReport(redis, memcached map[string]float64) *Report {
	rep := new(Report)
	for _, op := range Operations {
		row := ReportRow{Operation: op}
		if ns, ok := redis["Redis"+op]; ok {
			row.RedisLatency = Microseconds(ns / 1000)
			row.RedisOps = FormatOps(OpsPerSecond(ns))
		}
		if ns, ok := memcached["Memcached"+op]; ok {
			row.MemcachedLatency = Microseconds(ns / 1000)
			row.MemcachedOps = FormatOps(OpsPerSecond(ns))
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<table class='benchchart'>
<thead>
<tr><th>Operation<th>Redis time/op<th>Memcached time/op<th>Redis ops/sec<th>Memcached ops/sec
</thead>
<tbody>
{{range .Rows -}}
<tr><td>{{.Operation}}<td>{{.RedisLatency}}<td>{{.MemcachedLatency}}<td>{{.RedisOps}}<td>{{.MemcachedOps}}
{{end -}}
</tbody>
</table>
`)))

// FormatHTML appends an HTML formatting of the report to buf.
func FormatHTML(buf *bytes.Buffer, rep *Report) {
	if err := htmlTemplate.Execute(buf, rep); err != nil {
		// The only possible errors here are the template not
		// matching the data structure. Don't make the caller
		// check - it's our fault.
		panic(err)
	}
}
