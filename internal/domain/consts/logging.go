package consts

// Log file tags.
const (
	LogError   = "ERROR: "
	LogSuccess = "Success: "
	LogInfo    = "Info: "
	LogWarning = "Warning: "
	LogDebug   = "Debug: "
	LogBasic   = ""
)
