package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/guttosm/slotting-service/internal/catalog"
	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/export"
	"github.com/guttosm/slotting-service/internal/importer"
	"github.com/guttosm/slotting-service/internal/service"
)

type optimizeOptions struct {
	file        string
	location    string
	pallet      string
	catalogFile string
	pdfPath     string
	xlsxPath    string
	asJSON      bool
	trials      bool
	batchSize   int
	timeout     time.Duration
}

func runOptimize(args []string, stdout, stderr io.Writer) int {
	var opts optimizeOptions
	fs := pflag.NewFlagSet("optimize", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.file, "file", "f", "", "CSV or XLSX file with one SKU per row (required)")
	fs.StringVarP(&opts.location, "location", "l", "Pallet Rack 1", "catalog location name")
	fs.StringVarP(&opts.pallet, "pallet", "p", "Standard", "catalog pallet name")
	fs.StringVar(&opts.catalogFile, "catalog", "", "YAML catalog replacing the built-in defaults")
	fs.StringVar(&opts.pdfPath, "pdf", "", "write the report as PDF to this path")
	fs.StringVar(&opts.xlsxPath, "xlsx", "", "write the report as XLSX to this path")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON instead of a table")
	fs.BoolVar(&opts.trials, "trials", false, "include per-orientation trials in the report")
	fs.IntVar(&opts.batchSize, "batch-size", 10, "SKUs optimized per batch")
	fs.DurationVar(&opts.timeout, "timeout", 5*time.Minute, "overall time limit")

	if code, ok := parseFlags(fs, args, stderr); !ok {
		return code
	}
	if opts.file == "" {
		fmt.Fprintln(stderr, "slotctl optimize: --file is required")
		fs.PrintDefaults()
		return exitUsage
	}
	if opts.batchSize < 1 {
		fmt.Fprintln(stderr, "slotctl optimize: --batch-size must be at least 1")
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	report, err := optimizeFile(ctx, opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "slotctl optimize: %s\n", service.DescribeError(err))
		return exitError
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "slotctl optimize: %v\n", err)
			return exitError
		}
	} else {
		printReport(stdout, report)
	}

	if err := writeExports(opts, report); err != nil {
		fmt.Fprintf(stderr, "slotctl optimize: %v\n", err)
		return exitError
	}
	return exitOK
}

// optimizeFile imports the SKUs and optimizes them in batches against one catalog.
// Batch reports are merged in file order.
func optimizeFile(ctx context.Context, opts optimizeOptions, stderr io.Writer) (*model.OptimizationReport, error) {
	imported, err := importer.ImportFile(opts.file)
	if err != nil {
		return nil, err
	}
	for _, w := range imported.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	for _, e := range imported.Errors {
		fmt.Fprintf(stderr, "skipped: %s\n", e)
	}
	if len(imported.SKUs) == 0 {
		return nil, fmt.Errorf("%s: no valid SKU rows", opts.file)
	}

	c, err := loadCatalog(opts.catalogFile)
	if err != nil {
		return nil, err
	}
	optimizer := service.NewOptimizerService(
		service.NewStaticCatalogService(c),
		service.WithMaxSKUs(opts.batchSize),
	)

	var merged *model.OptimizationReport
	start := time.Now()
	for from := 0; from < len(imported.SKUs); from += opts.batchSize {
		to := min(from+opts.batchSize, len(imported.SKUs))
		result, err := optimizer.Optimize(ctx, dto.OptimizeRequest{
			Location:      opts.location,
			Pallet:        opts.pallet,
			SKUs:          imported.SKUs[from:to],
			IncludeTrials: opts.trials,
		}, service.Caller{})
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = result.Report
			continue
		}
		merged.SKUs = append(merged.SKUs, result.Report.SKUs...)
	}
	merged.DurationMS = time.Since(start).Milliseconds()
	return merged, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func printReport(w io.Writer, report *model.OptimizationReport) {
	fmt.Fprintf(w, "Location: %s (%s, max %s)\n", report.Location.Name, report.Location.Dimensions, formatWeight(report.Location.MaxWeight))
	fmt.Fprintf(w, "Pallet:   %s (%s, %s)\n", report.Pallet.Name, report.Pallet.Dimensions, formatWeight(report.Pallet.Weight))
	fmt.Fprintf(w, "Usable:   %.1f×%.1f×%.1f above %.1f, max %s\n\n",
		report.Container.Width, report.Container.Depth, report.Container.Height,
		report.Container.BaseHeight, formatWeight(report.Container.MaxWeight))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tDIMENSIONS\tSTATUS\tORIENTATION\tQTY\tLAYERS\tWEIGHT\tUTIL")
	for _, s := range report.SKUs {
		orientation := s.Orientation
		if orientation == "" {
			orientation = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s%%\n",
			s.SKU.Name, s.SKU.Dimensions, s.Status, orientation, s.Quantity, len(s.Layers),
			formatWeight(s.TotalWeight),
			decimal.NewFromFloat(s.Utilization*100).StringFixed(1))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\n%d of %d SKUs stored\n", report.PackedCount(), len(report.SKUs))
}

func formatWeight(w float64) string {
	return decimal.NewFromFloat(w).StringFixed(1)
}

func writeExports(opts optimizeOptions, report *model.OptimizationReport) error {
	if opts.pdfPath != "" {
		if err := writeFile(opts.pdfPath, func(w io.Writer) error { return export.WritePDF(w, *report) }); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
	}
	if opts.xlsxPath != "" {
		if err := writeFile(opts.xlsxPath, func(w io.Writer) error { return export.WriteXLSX(w, *report) }); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
