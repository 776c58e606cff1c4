// Command ledger-engine replays a CSV ledger of client transactions and
// prints the resulting client accounts.
//
//	ledger-engine [-format csv|table] [-log-level LEVEL] transactions.csv > accounts.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/config"
	"github.com/radhian/ledger-engine/infra/csvio"
	"github.com/radhian/ledger-engine/infra/report"
	"github.com/radhian/ledger-engine/usecase/ledger"
)

var (
	format   = flag.String("format", "csv", "Output format: csv or table")
	logLevel = flag.String("log-level", "ERROR", "Log level: DEBUG, INFO, WARN, ERROR or OFF")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <transactions.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "The program has failed! The following error occurred -> %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inputFile string, out io.Writer) error {
	lvl, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)

	if *format != "csv" && *format != "table" {
		return fmt.Errorf("unknown format %q", *format)
	}

	reader, err := csvio.Open(inputFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	engine := ledger.NewEngine()
	stats, err := engine.Run(ctx, reader)
	if err != nil {
		return err
	}
	log.Infof("[Ledger] Replayed %d records: applied=%d skipped=%d", stats.Records, stats.Applied, stats.Skipped)

	if *format == "table" {
		report.WriteTable(out, engine.Accounts())
		return nil
	}
	return csvio.WriteAccounts(out, engine.Accounts())
}
