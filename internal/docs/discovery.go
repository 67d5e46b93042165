package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// DocFile represents a discovered documentation file
type DocFile struct {
	Path         string // Absolute path to the file
	RelativePath string // Path relative to the docs directory (slash-separated)
	Section      string // First directory element, "" for root-level files
	Name         string // File name without extension
	Content      []byte // File content (loaded on demand)
}

// Discovery handles documentation file discovery under a single docs root.
type Discovery struct {
	docsDir  string
	docFiles []DocFile
}

// NewDiscovery creates a new documentation discovery instance
func NewDiscovery(docsDir string) *Discovery {
	return &Discovery{
		docsDir:  docsDir,
		docFiles: make([]DocFile, 0),
	}
}

// Discover finds all markdown files under the docs directory. Walk order is
// lexicographic per directory, so repeated runs yield the same sequence.
func (d *Discovery) Discover() ([]DocFile, error) {
	d.docFiles = make([]DocFile, 0)

	if _, err := os.Stat(d.docsDir); err != nil {
		return nil, fmt.Errorf("docs directory not accessible: %s: %w", d.docsDir, err)
	}

	err := filepath.WalkDir(d.docsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden files and directories
		if strings.HasPrefix(entry.Name(), ".") && entry.Name() != "." {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() || !IsMarkdownFile(path) {
			return nil
		}

		relPath, err := filepath.Rel(d.docsDir, path)
		if err != nil {
			return fmt.Errorf("invalid relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		section := ""
		if idx := strings.IndexByte(relPath, '/'); idx >= 0 {
			section = relPath[:idx]
		}

		docFile := DocFile{
			Path:         path,
			RelativePath: relPath,
			Section:      section,
			Name:         strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
		}
		d.docFiles = append(d.docFiles, docFile)

		slog.Debug("Discovered file",
			logfields.File(relPath),
			logfields.Section(section))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk docs directory %s: %w", d.docsDir, err)
	}

	slog.Info("Documentation files discovered", slog.Int("count", len(d.docFiles)))
	return d.docFiles, nil
}

// LoadContent loads the content of a documentation file
func (df *DocFile) LoadContent() error {
	if df.Content != nil {
		return nil // Already loaded
	}

	content, err := os.ReadFile(df.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", df.Path, err)
	}

	df.Content = content
	return nil
}

// GetDocFiles returns all discovered documentation files
func (d *Discovery) GetDocFiles() []DocFile {
	return d.docFiles
}

// GetDocFilesBySection returns documentation files grouped by section
func (d *Discovery) GetDocFilesBySection() map[string][]DocFile {
	result := make(map[string][]DocFile)
	for _, file := range d.docFiles {
		result[file.Section] = append(result[file.Section], file)
	}
	return result
}

// IsMarkdownFile checks if a file is a markdown file
func IsMarkdownFile(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".md"
}
