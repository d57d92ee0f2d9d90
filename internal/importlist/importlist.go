// Package importlist builds the persisted Caddyfile that imports every
// configured project's generated dev config.
package importlist

import (
	"path/filepath"
	"strings"
)

// header is written at the top of every generated import file.
const header = "# Generated by caddydev init - do not edit by hand\n" +
	"# Re-run 'caddydev init' to change the imported folders\n"

// Entry is a single folder path or glob pattern collected during init.
// Pattern keeps the user's original text for the comment line; Path is the
// home-expanded form the import directive is built from.
type Entry struct {
	Pattern string
	Path    string
}

// NewEntry builds an Entry from raw user input, expanding a leading home
// shorthand against home. When home is empty the input is kept verbatim.
func NewEntry(raw, home string) Entry {
	return Entry{Pattern: raw, Path: expandHome(raw, home)}
}

// expandHome expands "~" and "~/..." against home. Other forms, including
// "~user/...", are returned unchanged.
func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// importPath returns the path used in the entry's import directive. Entries
// that already contain a wildcard are used verbatim; plain folders get a
// one-level glob appended, because Caddy's import globbing has no
// recursive wildcard.
func (e Entry) importPath(outputName string) string {
	trimmed := strings.TrimRight(e.Path, "/")
	if strings.ContainsAny(trimmed, "*?") {
		return trimmed
	}
	return trimmed + "/*/" + outputName
}

// Render produces the full content of the import file: the fixed header,
// then one pattern comment and one import directive per entry.
func Render(entries []Entry, outputName string) string {
	var b strings.Builder
	b.WriteString(header)

	for _, entry := range entries {
		b.WriteString("# Pattern: ")
		b.WriteString(entry.Pattern)
		b.WriteString("\n")
		b.WriteString("import ")
		b.WriteString(entry.importPath(outputName))
		b.WriteString("\n")
	}

	return b.String()
}
