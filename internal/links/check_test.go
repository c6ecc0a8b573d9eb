package links

import (
	"errors"
	"strings"
	"testing"
)

func TestCheck_SingleEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		wantType CheckErrorType
		wantErr  bool
	}{
		{"valid deep link", Entry{Key: "A", URL: "https://docs.example.com/page.html#section"}, 0, false},
		{"valid page", Entry{Key: "A", URL: "https://example.com/"}, 0, false},
		{"empty URL", Entry{Key: "A", URL: ""}, CheckEmptyURL, true},
		{"http scheme", Entry{Key: "A", URL: "http://example.com/"}, CheckScheme, true},
		{"relative path", Entry{Key: "A", URL: "/user_guide/app.html"}, CheckScheme, true},
		{"missing host", Entry{Key: "A", URL: "https://"}, CheckHost, true},
		{"malformed", Entry{Key: "A", URL: "://example.com"}, CheckMalformed, true},
		{"empty key", Entry{Key: "", URL: "https://example.com/"}, CheckEmptyKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Check([]Entry{tt.entry})
			if report.Checked != 1 {
				t.Errorf("Checked = %d, want 1", report.Checked)
			}
			if report.OK() == tt.wantErr {
				t.Fatalf("OK() = %v, wantErr %v (errors: %v)", report.OK(), tt.wantErr, report.Errors)
			}
			if !tt.wantErr {
				return
			}
			if len(report.Errors) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(report.Errors), report.Errors)
			}
			if report.Errors[0].Type != tt.wantType {
				t.Errorf("error type = %v, want %v", report.Errors[0].Type, tt.wantType)
			}
		})
	}
}

func TestCheck_MalformedWrapsParseError(t *testing.T) {
	report := Check([]Entry{{Key: "BAD", URL: "://example.com"}})
	if report.OK() {
		t.Fatal("expected malformed URL to fail")
	}
	ce := report.Errors[0]
	if ce.Err == nil {
		t.Fatal("expected underlying parse error")
	}
	if errors.Unwrap(ce) != ce.Err {
		t.Error("Unwrap() should return the parse error")
	}
	if !strings.Contains(ce.Error(), "caused by") {
		t.Errorf("Error() = %q, should mention the cause", ce.Error())
	}
}

func TestCheck_DuplicateKey(t *testing.T) {
	report := Check([]Entry{
		{Key: "QP_MODE", URL: "https://example.com/a"},
		{Key: "QP_MODE", URL: "https://example.com/b"},
	})

	if got := report.Count(CheckDuplicateKey); got != 1 {
		t.Fatalf("Count(CheckDuplicateKey) = %d, want 1 (errors: %v)", got, report.Errors)
	}
	if len(report.Errors) != 1 {
		t.Errorf("got %d errors, want 1", len(report.Errors))
	}
}

func TestCheck_DuplicateURL(t *testing.T) {
	entries := []Entry{
		{Key: "FIRST", URL: "https://example.com/shared"},
		{Key: "SECOND", URL: "https://example.com/shared"},
	}

	report := Check(entries)
	if report.Count(CheckDuplicateURL) != 1 {
		t.Fatalf("expected one duplicate URL, got %v", report.Errors)
	}
	ce := report.Errors[0]
	if ce.Key != "SECOND" || ce.Other != "FIRST" {
		t.Errorf("duplicate = %s (other %s), want SECOND (other FIRST)", ce.Key, ce.Other)
	}
}

func TestCheck_AliasAllowsSharedURL(t *testing.T) {
	entries := []Entry{
		{Key: "FIRST", URL: "https://example.com/shared"},
		{Key: "SECOND", URL: "https://example.com/shared"},
	}

	// Alias order and spelling do not matter
	report := Check(entries, WithAlias("second", "first"))
	if !report.OK() {
		t.Errorf("aliased keys should pass, got %v", report.Errors)
	}

	report = Check(entries, WithAlias("FIRST", "OTHER"))
	if report.OK() {
		t.Error("unrelated alias should not excuse the duplicate")
	}
}

func TestCheck_AllowedHosts(t *testing.T) {
	report := Check(All(), WithAllowedHosts("docs.voxel51.com"))
	if got := report.Count(CheckHostNotAllowed); got != 1 {
		t.Fatalf("Count(CheckHostNotAllowed) = %d, want 1 (errors: %v)", got, report.Errors)
	}
	if report.Errors[0].Key != "NAME_COLORSCALE" {
		t.Errorf("offending key = %s, want NAME_COLORSCALE", report.Errors[0].Key)
	}

	report = Check(All(), WithAllowedHosts("Docs.Voxel51.com", " plotly.com "))
	if !report.OK() {
		t.Errorf("expected all hosts allowed, got %v", report.Errors)
	}
}

func TestCheck_ReportsEveryProblem(t *testing.T) {
	report := Check([]Entry{
		{Key: "A", URL: "http://example.com/"},
		{Key: "B", URL: ""},
		{Key: "C", URL: "https://example.com/ok"},
		{Key: "D", URL: "https://example.com/ok"},
	})

	if len(report.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(report.Errors), report.Errors)
	}
	wantKeys := []string{"A", "B", "D"}
	for i, ce := range report.Errors {
		if ce.Key != wantKeys[i] {
			t.Errorf("Errors[%d].Key = %s, want %s", i, ce.Key, wantKeys[i])
		}
	}
}

func TestReport_Err(t *testing.T) {
	ok := Check(All())
	if ok.Err() != nil {
		t.Errorf("Err() = %v, want nil", ok.Err())
	}

	bad := Check([]Entry{{Key: "A", URL: "ftp://example.com/"}})
	err := bad.Err()
	if err == nil {
		t.Fatal("Err() = nil, want error")
	}
	if !IsCheckError(err) {
		t.Errorf("IsCheckError(%v) = false, want true", err)
	}

	var ce *CheckError
	if !errors.As(err, &ce) || ce.Type != CheckScheme {
		t.Errorf("errors.As found %v, want CheckScheme", ce)
	}
}

func TestIsCheckError(t *testing.T) {
	if IsCheckError(errors.New("plain")) {
		t.Error("plain error reported as CheckError")
	}
	if IsCheckError(nil) {
		t.Error("nil reported as CheckError")
	}
}

func TestCheckErrorType_String(t *testing.T) {
	tests := []struct {
		typ  CheckErrorType
		want string
	}{
		{CheckEmptyKey, "Empty Key"},
		{CheckEmptyURL, "Empty URL"},
		{CheckMalformed, "Malformed URL"},
		{CheckScheme, "Bad Scheme"},
		{CheckHost, "Missing Host"},
		{CheckHostNotAllowed, "Host Not Allowed"},
		{CheckDuplicateKey, "Duplicate Key"},
		{CheckDuplicateURL, "Duplicate URL"},
		{CheckErrorType(99), "CheckErrorType(99)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CheckErrorType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestCheckError_EmptyKeyMessage(t *testing.T) {
	ce := &CheckError{Type: CheckEmptyKey, Message: "entry has no key"}
	if !strings.HasPrefix(ce.Error(), "<empty>:") {
		t.Errorf("Error() = %q, want <empty> prefix", ce.Error())
	}
}
