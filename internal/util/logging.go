// Package util provides common utilities including logging helpers,
// file system paths, and small numeric helpers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Logf logs a formatted event line.
func Logf(format string, args ...any) {
	log.Printf(format, args...)
}
