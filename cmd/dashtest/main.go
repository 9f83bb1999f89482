// Command dashtest checks the severe weather dashboard classification rules
// and prints a pass/fail report.
//
// Usage:
//
//	go run ./cmd/dashtest
//	go run ./cmd/dashtest --format json --scenarios testdata/plains.yaml
//
// The process exits 0 when every check passes and 1 otherwise.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
