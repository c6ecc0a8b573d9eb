package links

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is a single documentation link: a stable symbolic key and the URL
// it resolves to.
type Entry struct {
	Key string `json:"key" yaml:"key"`
	URL string `json:"url" yaml:"url"`
}

// registry is the iterable view of the constants in links.go, in
// declaration order. Keep both in sync when adding a link.
var registry = [...]Entry{
	{Key: "CLIPS_VIEWS", URL: ClipsViews},
	{Key: "COLOR_SCHEME", URL: ColorScheme},
	{Key: "EVALUATION_PATCHES", URL: EvaluationPatches},
	{Key: "FIELD_METADATA", URL: FieldMetadata},
	{Key: "FRAME_FILTERING_DISABLED", URL: FrameFilteringDisabled},
	{Key: "GRID_SETTINGS", URL: GridSettings},
	{Key: "OBJECT_PATCHES", URL: ObjectPatches},
	{Key: "NAME_COLORSCALE", URL: NameColorscale},
	{Key: "QP_MODE", URL: QPMode},
	{Key: "QP_MODE_SUMMARY", URL: QPModeSummary},
	{Key: "SIDEBAR_MODE", URL: SidebarMode},
	{Key: "SORT_BY_SIMILARITY", URL: SortBySimilarity},
}

// byKey indexes registry by key. Built once at package init, read-only after.
var byKey = func() map[string]string {
	m := make(map[string]string, len(registry))
	for _, e := range registry {
		m[e.Key] = e.URL
	}
	return m
}()

// All returns every entry in declaration order.
// The returned slice is a copy; modifying it does not affect the registry.
func All() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry[:])
	return out
}

// Keys returns all key names sorted lexicographically.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for _, e := range registry {
		keys = append(keys, e.Key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of links in the registry.
func Len() int { return len(registry) }

// Lookup returns the URL for a key given as text, such as a CLI argument.
// Matching ignores case and treats '-', '.' and spaces as '_', so "qp-mode"
// and "QP_MODE" resolve to the same link.
func Lookup(key string) (string, bool) {
	u, ok := byKey[NormalizeKey(key)]
	return u, ok
}

// Get returns the entry for key, using the same matching as Lookup.
func Get(key string) (Entry, bool) {
	k := NormalizeKey(key)
	u, ok := byKey[k]
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: k, URL: u}, true
}

// NormalizeKey converts free-form text into registry key form.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ' ':
			return '_'
		}
		return r
	}, key)
	return strings.ToUpper(key)
}

// Suggest returns registry keys that resemble key, for "did you mean"
// messages. Results are sorted; nil when nothing is close.
func Suggest(key string) []string {
	k := NormalizeKey(key)
	if k == "" {
		return nil
	}

	var out []string
	for _, candidate := range Keys() {
		if strings.Contains(candidate, k) || strings.Contains(k, candidate) {
			out = append(out, candidate)
			continue
		}
		// Match on the leading word, e.g. "SORT_BY" -> "SORT_BY_SIMILARITY"
		first, _, _ := strings.Cut(k, "_")
		if len(first) >= 3 && strings.HasPrefix(candidate, first+"_") {
			out = append(out, candidate)
		}
	}
	return out
}

// Title returns a human-readable label derived from the key,
// e.g. "QP_MODE_SUMMARY" -> "Qp Mode Summary".
func (e Entry) Title() string {
	words := strings.ReplaceAll(strings.ToLower(e.Key), "_", " ")
	return cases.Title(language.English).String(words)
}

// Host returns the URL's host, or "" if the URL does not parse.
func (e Entry) Host() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Fragment returns the URL's fragment identifier without the '#'.
func (e Entry) Fragment() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return u.Fragment
}

// IsDeepLink reports whether the URL points into a section of a page.
func (e Entry) IsDeepLink() bool { return e.Fragment() != "" }

// String returns "KEY url".
func (e Entry) String() string { return e.Key + " " + e.URL }
