package transformations

import (
	"strings"

	"github.com/araddon/dateparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediorg/internal/domain/enums"
	"mediorg/internal/domain/regex"
)

// applyNamingStyle applies the selected renaming convention.
func applyNamingStyle(style enums.ReplaceToStyle, input string) (output string) {
	switch style {
	case enums.RenamingSpaces:
		output = strings.ReplaceAll(input, "_", " ")
	case enums.RenamingUnderscores:
		output = strings.ReplaceAll(input, " ", "_")
	case enums.RenamingTitleCase:
		caser := cases.Title(language.English)
		output = caser.String(input)
	default:
		output = input
	}
	return output
}

// stripDateTags removes bracketed date tags (e.g. '[2024-01-31]') from a stem.
//
// Only tags whose contents parse as a real date are removed, so bracketed
// strings that merely look date-shaped survive.
func stripDateTags(stem string) string {
	changed := false
	out := regex.DateTagWithBracketsCompile().ReplaceAllStringFunc(stem, func(tag string) string {
		inner := strings.Trim(tag, "[]")
		if _, err := dateparse.ParseAny(inner); err != nil {
			return tag
		}
		changed = true
		return ""
	})
	if !changed {
		return stem
	}

	// Tag removal can leave doubled spacing behind
	out = regex.ExtraSpacesCompile().ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
