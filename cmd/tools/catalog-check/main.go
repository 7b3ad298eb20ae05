// cmd/tools/catalog-check/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"helper-directory/pkg/catalog"
)

// catalog-check validates a catalog override file offline, and can dump
// the compiled-in defaults as a starting point for one.
func main() {
	path := flag.String("path", "configs/catalog.json", "Path to catalog file")
	dumpDefaults := flag.Bool("defaults", false, "Print the default catalog as JSON and exit")
	flag.Parse()

	if *dumpDefaults {
		data, err := json.MarshalIndent(catalog.Default(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	cat, err := catalog.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: catalog %s is invalid: %v\n", *path, err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s (version %s, %d farming types, %d wage bands, %d machinery options)\n",
		*path, cat.Version, len(cat.FarmingTypes), len(cat.WageBands), len(cat.Machinery))
}
