// Package models holds shared data models.
package models

import "mediorg/internal/domain/enums"

// RenameConfig is the validated set of filename operations for one run.
//
// An empty string means the operation is unset. A config with every field
// unset/false is legal and makes the transformer a no-op.
type RenameConfig struct {
	Prefix          string
	Postfix         string
	RemoveSubstring string
	Clean           bool
	DryRun          bool

	Style         enums.ReplaceToStyle
	StripDateTags bool
}

// HasRenameOps reports whether any filename-changing operation is set.
func (c *RenameConfig) HasRenameOps() bool {
	return c.Prefix != "" || c.Postfix != "" || c.RemoveSubstring != "" ||
		c.Clean || c.StripDateTags || c.Style != enums.RenamingSkip
}
