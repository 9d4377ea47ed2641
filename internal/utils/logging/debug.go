package logging

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"mediorg/internal/domain/consts"
	"mediorg/internal/domain/keys"
)

// Level is the active debug level (0 - 3). Set once at startup.
var (
	Level = -1 // Pre initialization
	mu    sync.Mutex
)

func level() int {
	if Level < 0 {
		Level = viper.GetInt(keys.DebugLevel)
	}
	return Level
}

// E prints and logs an error message.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.ColorRedError+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogError, msg)
}

// W prints and logs a warning message.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.ColorYellowWarning+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogWarning, msg)
}

// S prints and logs a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.ColorGreenSuccess+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogSuccess, msg)
}

// I prints and logs an informational message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.ColorBlueInfo+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogInfo, msg)
}

// D prints and logs a debug message when the debug level is at least l.
//
// Debug messages do not appear at level 0.
func D(l int, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l > level() || level() == 0 {
		return
	}
	msg := fmt.Sprintf(consts.ColorYellowDebug+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogDebug, msg)
}

// P prints and logs a plain message with no tag.
func P(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogBasic, msg)
}
