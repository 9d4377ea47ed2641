// Package keys holds the Viper/flag key constants.
package keys

// Terminal keys.
const (
	StripPrefix     string = "prefix"
	StripPostfix    string = "postfix"
	RemoveSubstring string = "remove"
	Clean           string = "clean"
	MkFolders       string = "mkfolders"
	DryRun          string = "dry-run"

	RenameStyleInput string = "rename-style"
	StripDateTags    string = "strip-date-tags"

	MinFreeMemInput string = "min-free-mem"
	DebugLevel      string = "debug-level"
	ConfigPath      string = "config-file"
)

// Derived values set after validation.
const (
	TargetDirectory string = "targetDirectory"
	RenameStyleEnum string = "renameStyleEnum"
	MinFreeMem      string = "minFreeMem"
)
