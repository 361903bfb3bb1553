package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"queryinsights/adapters/excel"
	"queryinsights/internal/insight"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to a .csv or .xlsx file to profile")
		topN     = flag.Int("top", 1, "number of top-frequent values per column")
		compact  = flag.Bool("compact", false, "print compact JSON instead of indented")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -file data.csv [-top N] [-compact]")
		os.Exit(2)
	}

	set, err := excel.NewDataReader(*filePath).Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	engine := insight.NewEngine(insight.Config{TopFrequentCount: *topN})
	report, err := engine.Compute(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compute statistics: %v\n", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	if !*compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
		os.Exit(1)
	}
}
