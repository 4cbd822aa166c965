// Command lockscan runs the static deadlock-pattern analyser over one or
// more source files and prints the diagnostic report to standard
// output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/viant/lockscan"
	"github.com/viant/lockscan/model"
	"github.com/viant/lockscan/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("lockscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	exportPath := fs.String("export", "", "write the merged lock-dependency graph as YAML to this path")
	failOnCycle := fs.Bool("fail-on-cycle", false, "exit non-zero when at least one deadlock cycle is reported")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, lockscan.ErrUsage.Error())
		return 2
	}

	cfg := model.DefaultConfig()
	cfg.FailOnCycle = *failOnCycle
	if *exportPath != "" {
		cfg.ExportGraph = true
		cfg.ExportPath = *exportPath
	}

	analyzer := lockscan.New(lockscan.WithConfig(cfg))

	result, err := analyzer.AnalyzeFiles(context.Background(), paths)
	if err != nil {
		var readErr *lockscan.ErrRead
		if errors.As(err, &readErr) {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	report.RenderText(stdout, result)

	if cfg.FailOnCycle && len(result.Cycles) > 0 {
		return 1
	}
	return 0
}
