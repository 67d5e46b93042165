package docs

import (
	"reflect"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"index.md", "index.html"},
		{"quickstart.md", "quickstart.html"},
		{"getting-started/install.md", "getting-started/install.html"},
		{"getting-started/README.md", "getting-started/index.html"},
		{"README.md", "index.html"},
		{"a/b/c/notes.md", "a/b/c/notes.html"},
		// README mapping is case-sensitive: readme.md is an ordinary file
		{"docs-notes/readme.md", "docs-notes/readme.html"},
	}
	for _, tc := range cases {
		if got := OutputPath(tc.in); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsReadme(t *testing.T) {
	df := DocFile{RelativePath: "core-guides/README.md"}
	if !df.IsReadme() {
		t.Fatal("expected README detection")
	}
	df = DocFile{RelativePath: "core-guides/readme.md"}
	if df.IsReadme() {
		t.Fatal("lowercase readme must not count as section index")
	}
}

func TestSectionFilesOrdering(t *testing.T) {
	files := []DocFile{
		{RelativePath: "core-guides/zebra.md"},
		{RelativePath: "core-guides/README.md"},
		{RelativePath: "core-guides/alpha.md"},
		{RelativePath: "core-guides/middle.md"},
	}
	got := SectionFiles(files)
	want := []string{
		"core-guides/README.md",
		"core-guides/alpha.md",
		"core-guides/middle.md",
		"core-guides/zebra.md",
	}
	paths := make([]string, len(got))
	for i, f := range got {
		paths[i] = f.RelativePath
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v want %v", paths, want)
	}
}

func TestSectionFilesNoReadme(t *testing.T) {
	files := []DocFile{
		{RelativePath: "advanced/b.md"},
		{RelativePath: "advanced/a.md"},
	}
	got := SectionFiles(files)
	if len(got) != 2 || got[0].RelativePath != "advanced/a.md" {
		t.Fatalf("unexpected order: %v", got)
	}
}
