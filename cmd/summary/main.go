// Command summary loads a directory of carrier files, cleans the traffic
// columns and prints the descriptive statistics of every dataset.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"carrierdash/internal/carriers"
	"carrierdash/internal/logging"
	"carrierdash/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dataPath := fs.String("data", ".", "Directory of carrier files, or a single carrier file")
	xlsxPath := fs.String("xlsx", "", "Also write the summaries to this .xlsx workbook")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := logging.NewLogger(stderr, true, *verbose)

	manager, err := carriers.InitManager(carriers.Config{DataPath: *dataPath, Verbose: *verbose}, logger)
	if err != nil {
		return fmt.Errorf("failed to load carrier data: %w", err)
	}

	summaries := manager.GetSummaries()
	if err := report.WriteSummaries(stdout, summaries); err != nil {
		return err
	}

	if *xlsxPath != "" {
		if err := report.SaveWorkbook(*xlsxPath, summaries, logger); err != nil {
			return err
		}
		logger.Info("summary workbook written", slog.String("path", *xlsxPath))
	}
	return nil
}
