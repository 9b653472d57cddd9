package logfields

import "log/slog"

// Canonical log field name constants shared by the build stages.
const (
	KeyFolder  = "folder"
	KeyPage    = "page"
	KeyPath    = "path"
	KeyOutput  = "output"
	KeyCount   = "count"
	KeyHeading = "heading"
	KeyError   = "error"
)

func Folder(name string) slog.Attr { return slog.String(KeyFolder, name) }
func Page(name string) slog.Attr   { return slog.String(KeyPage, name) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr    { return slog.String(KeyOutput, p) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Heading(level int) slog.Attr  { return slog.Int(KeyHeading, level) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
