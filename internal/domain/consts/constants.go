package consts

// Rename style terminal strings.
const (
	RenameSpaces      = "spaces"
	RenameUnderscores = "underscores"
	RenameTitleCase   = "title-case"
	RenameSkip        = "skip"
)

// Memory units.
const (
	KB uint64 = 1024
	MB uint64 = KB * 1024
	GB uint64 = MB * 1024
)
