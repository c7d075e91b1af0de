//go:build !linux && !darwin

package files

import (
	"os"
	"time"
)

// fileCreated на остальных платформах приближается временем модификации.
func fileCreated(info os.FileInfo) time.Time {
	return info.ModTime()
}
