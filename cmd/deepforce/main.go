// Package main provides the DeepForce ML Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/deepforce-ml/deepforce/internal/loader"
	"github.com/deepforce-ml/deepforce/internal/outputdef"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("DeepForce ML Framework %s\n", version)
			return
		case "schema":
			runSchema(os.Args[2:])
			return
		}
	}

	fmt.Println("DeepForce ML Framework - Machine-Learned Potentials for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version             Show version")
	fmt.Println("  schema <file.yaml>  Print the derived model output schema")
	fmt.Println("")
	fmt.Println("Coming soon: train, eval, convert")
}

// runSchema loads a fitting declaration and prints every output variable
// the derived model schema exposes.
func runSchema(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: deepforce schema <file.yaml>")
		os.Exit(2)
	}
	fit, err := loader.New(nil).LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "deepforce: %v\n", err)
		os.Exit(1)
	}
	md, err := outputdef.NewModelOutputDef(fit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "deepforce: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%-28s %-12s %-11s %s\n", "NAME", "SHAPE", "KIND", "CATEGORY")
	for _, k := range md.Keys() {
		d, err := md.Get(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "deepforce: %v\n", err)
			os.Exit(1)
		}
		kind := "per-atom"
		if !d.Atomic() {
			kind = "per-system"
		}
		fmt.Printf("%-28s %-12v %-11s %s\n", k, d.Shape(), kind, d.Category())
	}
}
