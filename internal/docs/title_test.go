package docs

import "testing"

func TestTitleFromHeading(t *testing.T) {
	cases := []struct {
		name    string
		content string
		rel     string
		want    string
	}{
		{"first line", "# Welcome\n\nText.", "index.md", "Welcome"},
		{"heading later in document", "Preamble text.\n\nMore.\n\n# Actual Title\n\nBody.", "guide.md", "Actual Title"},
		{"trims whitespace", "#   Spaced Out   \n", "a.md", "Spaced Out"},
		{"ignores deeper headings", "## Not This\n\n# This One\n", "b.md", "This One"},
		{"hash without space is not a heading", "#nope\n\n# Real\n", "c.md", "Real"},
	}
	for _, tc := range cases {
		if got := Title([]byte(tc.content), tc.rel); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestTitleFallbackToFilename(t *testing.T) {
	cases := []struct {
		rel  string
		want string
	}{
		{"getting-started/install.md", "Install"},
		{"core-guides/data_pipelines.md", "Data Pipelines"},
		{"foo/README.md", "Foo"},
		{"key-concepts/index.md", "Key Concepts"},
		{"quick-reference.md", "Quick Reference"},
		{"README.md", "Readme"}, // root README has no section directory
	}
	for _, tc := range cases {
		if got := Title(nil, tc.rel); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.rel, got, tc.want)
		}
	}
}

func TestHumanizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"getting-started", "Getting Started"},
		{"key_concepts", "Key Concepts"},
		{"reference", "Reference"},
	}
	for _, tc := range cases {
		if got := HumanizeName(tc.in); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
	}
}
