// Package transformations generates new file names from configured operations.
package transformations

import (
	"strings"

	"mediorg/internal/domain/regex"
	"mediorg/internal/models"
)

// TransformName applies the configured filename operations to name and returns
// the new name. Pure and total: no I/O, never fails.
//
// The extension is split off first, reattached last, and never transformed.
// When no stage alters the name, the original string is returned unchanged so
// callers can compare for equality to detect a no-op.
func TransformName(name string, cfg *models.RenameConfig) string {
	stem, ext := SplitExt(name)
	newStem := stem

	if cfg.StripDateTags {
		newStem = stripDateTags(newStem)
	}

	// Strip the prefix (exactly once, byte-wise match)
	if cfg.Prefix != "" && strings.HasPrefix(newStem, cfg.Prefix) {
		newStem = newStem[len(cfg.Prefix):]
	}

	// Strip the postfix (exactly once, byte-wise match)
	if cfg.Postfix != "" && strings.HasSuffix(newStem, cfg.Postfix) {
		newStem = strings.TrimSuffix(newStem, cfg.Postfix)
	}

	// Remove all occurrences of a specific substring
	if cfg.RemoveSubstring != "" {
		newStem = strings.ReplaceAll(newStem, cfg.RemoveSubstring, "")
	}

	// General cleanup of separators, release tags and spacing
	if cfg.Clean {
		newStem = cleanStem(newStem)
	}

	newStem = applyNamingStyle(cfg.Style, newStem)

	result := newStem + ext
	if result == name {
		return name
	}
	return result
}

// SplitExt splits a filename into its stem and extension at the last dot.
//
// The extension includes the leading dot. A name with no dot, or with nothing
// but dots before its last dot (e.g. ".bashrc", "..bashrc"), has an empty
// extension.
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// cleanStem performs the general filename cleanup.
func cleanStem(stem string) string {
	// Replace runs of '_', '.', '-' with a single space
	stem = regex.SeparatorRunsCompile().ReplaceAllString(stem, " ")

	// Remove release tags (case-insensitive, longest tag wins)
	stem = regex.ReleaseTagMatchCompile().ReplaceAllString(stem, "")

	// Remove curly braces
	stem = strings.ReplaceAll(stem, "{", "")
	stem = strings.ReplaceAll(stem, "}", "")

	// Consolidate multiple spaces and trim
	stem = regex.ExtraSpacesCompile().ReplaceAllString(stem, " ")
	return strings.TrimSpace(stem)
}
