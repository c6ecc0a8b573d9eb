// Fiftyone-links inspects the registry of documentation links shown by the
// FiftyOne App as "learn more" links.
//
// It lists and shows links, checks them offline for malformed or duplicate
// entries, exports them for link-checking tooling, and offers an interactive
// browser. It never fetches the links themselves.
//
// Usage:
//
//	fiftyone-links [command] [flags]
//
// Running without arguments lists every link.
// See 'fiftyone-links --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/voxel51/fiftyone-links/internal/logging"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
