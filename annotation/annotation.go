// Package annotation attaches source metadata to parse results for
// developer-facing diagnostics.
package annotation

import "strings"

// Metadata carries diagnostic source information for a parsed modifier.
// It is informational only and never affects parse success.
type Metadata struct {
	File   string
	Line   int
	Module string
	Source string
}

// IsZero reports whether no metadata was captured.
func (m Metadata) IsZero() bool {
	return m.File == "" && m.Line == 0 && m.Module == "" && m.Source == ""
}

// Config controls whether annotations are captured. The zero value
// disables them. It is passed explicitly to compiler and registry
// constructors instead of living in process-global state.
type Config struct {
	Enabled bool
}

// Annotate builds the metadata for one source line. When annotations are
// disabled it returns the zero Metadata unconditionally. The lookup is
// pure and cheap, no caching is done.
func Annotate(cfg Config, file string, module string, line int, sourceLines []string) Metadata {
	if !cfg.Enabled {
		return Metadata{}
	}

	source := ""
	if line >= 1 && line <= len(sourceLines) {
		source = strings.TrimSpace(sourceLines[line-1])
	}

	return Metadata{
		File:   file,
		Line:   line,
		Module: module,
		Source: source,
	}
}
