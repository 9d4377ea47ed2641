package consts

// Recommended permissions for files and directories mediorg might create.
const (
	// Media directories - world readable
	PermsGenericDir     = 0o755
	PermsHomeMediorgDir = 0o700

	// Other files
	PermsLogFile = 0o644
)
