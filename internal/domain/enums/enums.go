// Package enums holds enumerated variables.
package enums

// ReplaceToStyle dictates a naming convention to use, e.g. spaces or underscores.
type ReplaceToStyle int

const (
	RenamingSkip ReplaceToStyle = iota
	RenamingSpaces
	RenamingUnderscores
	RenamingTitleCase
)

// RenameOutcome classifies the result of one file in a rename pass.
type RenameOutcome int

const (
	RenameRenamed RenameOutcome = iota
	RenameSkippedNoChange
	RenameSkippedConflict
	RenameFailed
)

// String returns the display string for a rename outcome.
func (o RenameOutcome) String() string {
	switch o {
	case RenameRenamed:
		return "renamed"
	case RenameSkippedNoChange:
		return "skipped (no change)"
	case RenameSkippedConflict:
		return "skipped (conflict)"
	case RenameFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PromoteOutcome classifies the result of one entry in a folder promotion pass.
type PromoteOutcome int

const (
	PromotePromoted PromoteOutcome = iota
	PromoteExistingFolder
	PromoteSkippedNotAFile
	PromoteFailed
)

// String returns the display string for a promotion outcome.
func (o PromoteOutcome) String() string {
	switch o {
	case PromotePromoted:
		return "promoted"
	case PromoteExistingFolder:
		return "promoted (folder existed)"
	case PromoteSkippedNotAFile:
		return "skipped (not a file)"
	case PromoteFailed:
		return "failed"
	default:
		return "unknown"
	}
}
