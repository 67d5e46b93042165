package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath    = "path"
	KeyFile    = "file"
	KeySection = "section"
	KeyOutput  = "output"
	KeyTitle   = "title"
	KeyPages   = "pages"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func File(f string) slog.Attr    { return slog.String(KeyFile, f) }
func Section(s string) slog.Attr { return slog.String(KeySection, s) }
func Output(o string) slog.Attr  { return slog.String(KeyOutput, o) }
func Title(t string) slog.Attr   { return slog.String(KeyTitle, t) }
func Pages(n int) slog.Attr      { return slog.Int(KeyPages, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
