// Package regex handles and caches regex directives.
package regex

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"mediorg/internal/domain/consts"
)

// Regex cache.
var (
	AnsiEscape          *regexp.Regexp
	DateTagWithBrackets *regexp.Regexp
	ExtraSpaces         *regexp.Regexp
	ReleaseTagMatch     *regexp.Regexp
	SeparatorRuns       *regexp.Regexp

	// Initialize sync.Once for each compilation.
	ansiEscapeOnce          sync.Once
	dateTagWithBracketsOnce sync.Once
	extraSpacesOnce         sync.Once
	releaseTagMatchOnce     sync.Once
	separatorRunsOnce       sync.Once
)

// AnsiEscapeCompile compiles regex for ANSI escape codes.
func AnsiEscapeCompile() *regexp.Regexp {
	ansiEscapeOnce.Do(func() {
		AnsiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	})
	return AnsiEscape
}

// DateTagWithBracketsCompile compiles regex to find [date] tags anywhere in a string.
func DateTagWithBracketsCompile() *regexp.Regexp {
	dateTagWithBracketsOnce.Do(func() {
		DateTagWithBrackets = regexp.MustCompile(`\[\d{2,4}-\d{2}-\d{2}\]`)
	})
	return DateTagWithBrackets
}

// ExtraSpacesCompile compiles regex for runs of whitespace.
func ExtraSpacesCompile() *regexp.Regexp {
	extraSpacesOnce.Do(func() {
		ExtraSpaces = regexp.MustCompile(`\s+`)
	})
	return ExtraSpaces
}

// SeparatorRunsCompile compiles regex for runs of underscore, dot and dash separators.
func SeparatorRunsCompile() *regexp.Regexp {
	separatorRunsOnce.Do(func() {
		SeparatorRuns = regexp.MustCompile(`[_.\-]+`)
	})
	return SeparatorRuns
}

// ReleaseTagMatchCompile compiles the case-insensitive release tag alternation.
//
// Longer tags are placed first so a tag is never left partially matched by a
// shorter tag contained within it (e.g. "dd5.1" must win over "5.1").
func ReleaseTagMatchCompile() *regexp.Regexp {
	releaseTagMatchOnce.Do(func() {
		tags := make([]string, len(consts.ReleaseTags))
		copy(tags, consts.ReleaseTags)
		sort.SliceStable(tags, func(i, j int) bool {
			return len(tags[i]) > len(tags[j])
		})

		quoted := make([]string, 0, len(tags))
		for _, t := range tags {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
		ReleaseTagMatch = regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
	})
	return ReleaseTagMatch
}
