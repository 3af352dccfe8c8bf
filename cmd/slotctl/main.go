// Command slotctl runs the slotting optimizer offline against a SKU file.
//
// Usage:
//
//	slotctl optimize --file skus.csv --location "Pallet Rack 1" --pallet Standard [--pdf out.pdf] [--xlsx out.xlsx]
//	slotctl catalog [--catalog catalog.yaml]
//	slotctl keys
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/guttosm/slotting-service/internal/logger"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdout, stderr io.Writer) int
}

func commands() []command {
	return []command{
		{"optimize", "optimize SKUs from a CSV or XLSX file", runOptimize},
		{"catalog", "print the location and pallet catalog as YAML", runCatalog},
		{"keys", "generate JWT secrets and an API key", runKeys},
	}
}

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger.Init(level, true)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}
	for _, cmd := range commands() {
		if cmd.name == args[0] {
			return cmd.run(args[1:], stdout, stderr)
		}
	}
	fmt.Fprintf(stderr, "slotctl: unknown command %q\n\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slotctl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
}

// parseFlags parses args into fs. On failure it reports the error on stderr and returns
// the exit code the command should end with; --help exits cleanly.
func parseFlags(fs *pflag.FlagSet, args []string, stderr io.Writer) (int, bool) {
	err := fs.Parse(args)
	switch {
	case err == nil:
		return exitOK, true
	case errors.Is(err, pflag.ErrHelp):
		return exitOK, false
	default:
		fmt.Fprintf(stderr, "slotctl %s: %v\n", fs.Name(), err)
		fs.PrintDefaults()
		return exitUsage, false
	}
}
