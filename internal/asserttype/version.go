package asserttype

import (
	"go/version"
	"strings"
)

// LanguageVersion extracts the language version ("1.22") from a toolchain
// version string such as "go1.22.3", "go1.23rc1" or
// "devel go1.26-0a1b2c3 Mon Jan 5 2026". It returns "" when none is found.
func LanguageVersion(v string) string {
	for _, field := range strings.Fields(v) {
		if !strings.HasPrefix(field, "go") {
			continue
		}
		if i := strings.IndexAny(field, "-+"); i > 0 {
			field = field[:i]
		}
		if lang := version.Lang(field); lang != "" {
			return strings.TrimPrefix(lang, "go")
		}
	}
	return ""
}
