package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

func runCatalog(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("catalog", "", "YAML catalog to validate and print instead of the defaults")
	if code, ok := parseFlags(fs, args, stderr); !ok {
		return code
	}

	c, err := loadCatalog(*file)
	if err != nil {
		fmt.Fprintf(stderr, "slotctl catalog: %v\n", err)
		return exitError
	}
	data, err := c.Marshal()
	if err != nil {
		fmt.Fprintf(stderr, "slotctl catalog: %v\n", err)
		return exitError
	}
	_, _ = stdout.Write(data)
	return exitOK
}
