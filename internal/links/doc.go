// Package links provides the registry of documentation URLs shown as
// "learn more" links throughout the App.
//
// Every link is an exported constant, so consumers reference a link by name
// and a typo or a removed link fails at compile time:
//
//	import "github.com/voxel51/fiftyone-links/internal/links"
//
//	fmt.Printf("For more information, see: %s\n", links.QPMode)
//
// The same table is available as data for tooling that needs to iterate it,
// such as the link checker and the fiftyone-links CLI:
//
//	for _, e := range links.All() {
//	    fmt.Println(e.Key, e.URL)
//	}
//
//	url, ok := links.Lookup("qp-mode")
//
// # Compatibility
//
// Consumers refer to links by name, never by position or count. New links
// may be added at any time; renaming or removing one is a breaking change.
//
// # Checking
//
// Check validates a set of entries offline: every URL must be an absolute
// https URL with a host, keys must be unique, and two keys may only share a
// URL when declared as an alias. It never fetches anything. Validate runs
// Check against the built-in table and is exercised by this package's tests,
// so a malformed entry fails the test run instead of surfacing at runtime.
//
// # Thread Safety
//
// The registry is never mutated after initialization. All functions are
// safe for concurrent use, and the views they return are copies.
package links
