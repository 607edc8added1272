package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"deliverect/internal/config"
	"deliverect/internal/locations"
	"deliverect/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := newLogger(cfg)

	locs, err := locations.Load(cfg.LocationsPath)
	must(err)

	svc, err := pipeline.NewService(cfg, log, locs)
	must(err)

	cmd := os.Args[1]
	switch cmd {
	case "orders":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "orders.csv"), "output path")
		format := fs.String("format", "csv", "csv|xlsx")
		_ = fs.Parse(os.Args[2:])

		rows, err := svc.LoadOrderData()
		must(err)
		switch *format {
		case "csv":
			must(pipeline.ExportOrdersCSV(rows, *out))
		case "xlsx":
			must(pipeline.ExportOrdersXLSX(rows, *out))
		default:
			must(fmt.Errorf("unsupported format: %s", *format))
		}
		fmt.Printf("orders done rows=%d output=%s\n", len(rows), *out)
	case "items":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "items.csv"), "output path")
		format := fs.String("format", "csv", "csv|xlsx")
		_ = fs.Parse(os.Args[2:])

		rows, err := svc.LoadItemLevelDetail()
		must(err)
		switch *format {
		case "csv":
			must(pipeline.ExportItemsCSV(rows, *out))
		case "xlsx":
			must(pipeline.ExportItemsXLSX(rows, *out))
		default:
			must(fmt.Errorf("unsupported format: %s", *format))
		}
		fmt.Printf("items done rows=%d output=%s\n", len(rows), *out)
	default:
		usage()
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	if cfg.LogFormat == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}

func usage() {
	fmt.Println("usage: deliverect <command>")
	fmt.Println("commands:")
	fmt.Println("  orders --out=./out/orders.csv --format=csv|xlsx")
	fmt.Println("  items  --out=./out/items.csv --format=csv|xlsx")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
