// Package vars stores run-scoped global variables.
package vars

import "sync"

var (
	errMu      sync.Mutex
	errorArray = make([]error, 0)
)

// AddToErrorArray adds an error to the error array under lock.
func AddToErrorArray(err error) {
	errMu.Lock()
	defer errMu.Unlock()
	errorArray = append(errorArray, err)
}

// GetErrorArray returns the error array.
func GetErrorArray() []error {
	errMu.Lock()
	defer errMu.Unlock()
	out := make([]error, len(errorArray))
	copy(out, errorArray)
	return out
}
