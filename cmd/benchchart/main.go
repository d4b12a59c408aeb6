// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Benchchart renders StriGO's benchmark comparison charts.
//
// Usage:
//
//	benchchart [-redis file] [-memcached file] [-dir directory] [-html file] [-history file]
//
// Benchchart reads the output of "go test -bench" for the Redis and
// Memcached backends (by default redis_results.txt and
// memcached_results.txt in the working directory), averages the ns/op
// samples per benchmark, and writes two grouped bar charts to the
// output directory:
//
//	performance_benchmark.png   mean latency per operation, in microseconds
//	throughput_benchmark.png    derived operations per second
//
// Rerunning with the same inputs overwrites both files in place.
//
// With -html, benchchart also writes a summary table of both backends
// to the given file. With -history, each run's averaged results are
// appended to a SQLite database at the given path.
//
// A benchmark missing from an input file draws as a zero-height bar.
// A missing input file is an error.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/veyselaksin/benchchart/benchchart"
	"github.com/veyselaksin/benchchart/benchhist"
	"github.com/veyselaksin/benchchart/benchparse"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchchart [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagRedis     = flag.String("redis", "redis_results.txt", "read Redis benchmark results from `file`")
	flagMemcached = flag.String("memcached", "memcached_results.txt", "read Memcached benchmark results from `file`")
	flagDir       = flag.String("dir", ".", "write charts into `directory`")
	flagHTML      = flag.String("html", "", "also write an HTML report to `file`")
	flagHistory   = flag.String("history", "", "append averaged results to a SQLite database at `file`")
)

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	if *flagDir != "." {
		os.MkdirAll(*flagDir, 0777)
	}

	redis := means(*flagRedis)
	memcached := means(*flagMemcached)

	if err := benchchart.Latency(redis, memcached, filepath.Join(*flagDir, "performance_benchmark.png")); err != nil {
		log.Fatal(err)
	}
	if err := benchchart.Throughput(redis, memcached, filepath.Join(*flagDir, "throughput_benchmark.png")); err != nil {
		log.Fatal(err)
	}

	if *flagHTML != "" {
		var buf bytes.Buffer
		buf.WriteString(htmlHeader)
		benchchart.FormatHTML(&buf, benchchart.NewReport(redis, memcached))
		buf.WriteString(htmlFooter)
		if err := os.WriteFile(*flagHTML, buf.Bytes(), 0666); err != nil {
			log.Fatal(err)
		}
	}

	if *flagHistory != "" {
		db, err := benchhist.Open(*flagHistory)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.RecordRun("redis", redis); err != nil {
			log.Fatal(err)
		}
		if err := db.RecordRun("memcached", memcached); err != nil {
			log.Fatal(err)
		}
	}
}

// means parses one results file into per-benchmark mean ns/op.
func means(path string) map[string]float64 {
	var c benchparse.Collection
	if err := c.AddFile(path); err != nil {
		log.Fatal(err)
	}
	return c.Means()
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>StriGO Benchmark Report</title>
<style>
.benchchart { border-collapse: collapse; }
.benchchart th, .benchchart td { text-align: right; padding: 0.2em 1em; }
.benchchart th:first-child, .benchchart td:first-child { text-align: left; }
.benchchart thead th { border-bottom: 1px solid #666; }
</style>
</head>
<body>
<h1>StriGO Benchmark Report</h1>
`
var htmlFooter = `</body>
</html>
`
