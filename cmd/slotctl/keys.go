package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func runKeys(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("keys", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	secretBytes := fs.Int("secret-bytes", 32, "random bytes per JWT secret")
	apiKeyBytes := fs.Int("api-key-bytes", 24, "random bytes per API key")
	if code, ok := parseFlags(fs, args, stderr); !ok {
		return code
	}
	if *secretBytes < 32 || *apiKeyBytes < 16 {
		fmt.Fprintln(stderr, "slotctl keys: secrets need at least 32 bytes and API keys at least 16")
		return exitUsage
	}

	values := make([]string, 0, 3)
	for _, n := range []int{*secretBytes, *secretBytes, *apiKeyBytes} {
		key, err := generateSecureKey(n)
		if err != nil {
			fmt.Fprintf(stderr, "slotctl keys: %v\n", err)
			return exitError
		}
		values = append(values, key)
	}

	fmt.Fprintln(stdout, "# JWT configuration (requires AUTH_ENABLED=true and MongoDB)")
	fmt.Fprintf(stdout, "JWT_SECRET_KEY=%s\n", values[0])
	fmt.Fprintf(stdout, "JWT_REFRESH_SECRET_KEY=%s\n", values[1])
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "# API key for service-to-service calls (planner role)")
	fmt.Fprintf(stdout, "API_KEYS=%s\n", values[2])
	return exitOK
}
