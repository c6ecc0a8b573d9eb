package links

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// CheckErrorType represents the category of problem found by Check.
type CheckErrorType int

const (
	// CheckEmptyKey indicates an entry with no key
	CheckEmptyKey CheckErrorType = iota
	// CheckEmptyURL indicates an entry with no URL
	CheckEmptyURL
	// CheckMalformed indicates a URL that does not parse
	CheckMalformed
	// CheckScheme indicates a relative URL or a scheme other than https
	CheckScheme
	// CheckHost indicates a URL with no host
	CheckHost
	// CheckHostNotAllowed indicates a host outside the configured allow-list
	CheckHostNotAllowed
	// CheckDuplicateKey indicates a key declared more than once
	CheckDuplicateKey
	// CheckDuplicateURL indicates two keys sharing a URL without an alias
	CheckDuplicateURL
)

// String returns a human-readable name for the check error type
func (t CheckErrorType) String() string {
	switch t {
	case CheckEmptyKey:
		return "Empty Key"
	case CheckEmptyURL:
		return "Empty URL"
	case CheckMalformed:
		return "Malformed URL"
	case CheckScheme:
		return "Bad Scheme"
	case CheckHost:
		return "Missing Host"
	case CheckHostNotAllowed:
		return "Host Not Allowed"
	case CheckDuplicateKey:
		return "Duplicate Key"
	case CheckDuplicateURL:
		return "Duplicate URL"
	default:
		return fmt.Sprintf("CheckErrorType(%d)", t)
	}
}

// CheckError describes one problem with one entry.
type CheckError struct {
	Type    CheckErrorType // Category of problem
	Key     string         // Offending entry's key
	URL     string         // Offending entry's URL
	Other   string         // Previously seen key, for duplicates
	Message string         // Human-readable detail
	Err     error          // Underlying parse error (if any)
}

// Error implements the error interface
func (e *CheckError) Error() string {
	key := e.Key
	if key == "" {
		key = "<empty>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", key, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", key, e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CheckError) Unwrap() error {
	return e.Err
}

// IsCheckError reports whether err is, or wraps, a *CheckError.
func IsCheckError(err error) bool {
	var ce *CheckError
	return errors.As(err, &ce)
}

// Report is the outcome of a Check run.
type Report struct {
	Checked int           // Number of entries inspected
	Errors  []*CheckError // Problems in entry order
}

// OK reports whether no problems were found.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Err returns all problems joined into a single error, or nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Count returns the number of problems of type t.
func (r *Report) Count(t CheckErrorType) int {
	n := 0
	for _, e := range r.Errors {
		if e.Type == t {
			n++
		}
	}
	return n
}

// CheckOption modifies how Check validates entries.
type CheckOption func(*checkOptions)

type checkOptions struct {
	aliases      map[[2]string]struct{}
	allowedHosts map[string]struct{}
}

// WithAlias declares that keys a and b intentionally share a URL.
// Order does not matter.
func WithAlias(a, b string) CheckOption {
	return func(o *checkOptions) {
		if o.aliases == nil {
			o.aliases = make(map[[2]string]struct{})
		}
		o.aliases[aliasPair(a, b)] = struct{}{}
	}
}

// WithAllowedHosts restricts URLs to the given hosts. Without this option
// any host is accepted.
func WithAllowedHosts(hosts ...string) CheckOption {
	return func(o *checkOptions) {
		if o.allowedHosts == nil {
			o.allowedHosts = make(map[string]struct{})
		}
		for _, h := range hosts {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" {
				o.allowedHosts[h] = struct{}{}
			}
		}
	}
}

func aliasPair(a, b string) [2]string {
	a, b = NormalizeKey(a), NormalizeKey(b)
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Check validates entries without touching the network. It never stops at
// the first problem; every entry is inspected.
func Check(entries []Entry, opts ...CheckOption) *Report {
	var o checkOptions
	for _, fn := range opts {
		fn(&o)
	}

	report := &Report{Checked: len(entries)}
	add := func(e *CheckError) { report.Errors = append(report.Errors, e) }

	seenKeys := make(map[string]struct{}, len(entries))
	seenURLs := make(map[string]string, len(entries))

	for _, e := range entries {
		if e.Key == "" {
			add(&CheckError{Type: CheckEmptyKey, URL: e.URL, Message: "entry has no key"})
		} else if _, dup := seenKeys[e.Key]; dup {
			add(&CheckError{Type: CheckDuplicateKey, Key: e.Key, URL: e.URL, Other: e.Key,
				Message: "key is declared more than once"})
		} else {
			seenKeys[e.Key] = struct{}{}
		}

		if e.URL == "" {
			add(&CheckError{Type: CheckEmptyURL, Key: e.Key, Message: "entry has no URL"})
			continue
		}

		if ce := checkURL(e, &o); ce != nil {
			add(ce)
			continue
		}

		if prev, dup := seenURLs[e.URL]; dup {
			if _, ok := o.aliases[aliasPair(prev, e.Key)]; !ok {
				add(&CheckError{Type: CheckDuplicateURL, Key: e.Key, URL: e.URL, Other: prev,
					Message: fmt.Sprintf("URL already used by %s", prev)})
			}
			continue
		}
		seenURLs[e.URL] = e.Key
	}

	return report
}

// checkURL validates the syntax of a single entry's URL.
func checkURL(e Entry, o *checkOptions) *CheckError {
	u, err := url.Parse(e.URL)
	if err != nil {
		return &CheckError{Type: CheckMalformed, Key: e.Key, URL: e.URL,
			Message: "URL does not parse", Err: err}
	}
	if !u.IsAbs() || u.Scheme != "https" {
		return &CheckError{Type: CheckScheme, Key: e.Key, URL: e.URL,
			Message: fmt.Sprintf("scheme must be https, got %q", u.Scheme)}
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return &CheckError{Type: CheckHost, Key: e.Key, URL: e.URL, Message: "URL has no host"}
	}
	if len(o.allowedHosts) > 0 {
		if _, ok := o.allowedHosts[host]; !ok {
			return &CheckError{Type: CheckHostNotAllowed, Key: e.Key, URL: e.URL,
				Message: fmt.Sprintf("host %s is not in the allow-list", host)}
		}
	}
	return nil
}

// Validate runs Check against the built-in registry and returns the joined
// problems, or nil.
func Validate(opts ...CheckOption) error {
	return Check(All(), opts...).Err()
}
