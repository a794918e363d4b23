package codegen

import (
	"net/url"
	"path/filepath"
	"strings"
)

// BaseName derives the identifier prefix and file stem from an input path:
// leading directories and the final extension are stripped. URLs are reduced
// to their path first.
func BaseName(input string) string {
	name := input
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		name = u.Path
	}

	if i := strings.LastIndexAny(name, "/"+string(filepath.Separator)); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}

	return name
}

// Filename is the name of the generated source for base.
func Filename(base string) string {
	return base + Extension
}
