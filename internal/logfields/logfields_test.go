package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "docs/guide.md", Path("docs/guide.md")},
		{"File", KeyFile, "guide.md", File("guide.md")},
		{"Section", KeySection, "core-guides", Section("core-guides")},
		{"Output", KeyOutput, "./site", Output("./site")},
		{"Title", KeyTitle, "Guide", Title("Guide")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestPagesField(t *testing.T) {
	a := Pages(7)
	if a.Key != KeyPages || a.Value.Int64() != 7 {
		t.Fatalf("unexpected pages attr: %v", a)
	}
}

func TestErrorField(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("nil error: expected empty value, got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
}
