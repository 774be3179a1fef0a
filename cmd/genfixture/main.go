package main

import (
	"fmt"
	"os"

	"github.com/airssys/wasm-fixtures/fixture"
)

func main() {
	n, err := fixture.Write(fixture.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d bytes)\n", fixture.DefaultPath, n)
}
