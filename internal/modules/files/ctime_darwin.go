//go:build darwin

package files

import (
	"os"
	"syscall"
	"time"
)

// fileCreated возвращает время изменения inode (st_ctime).
func fileCreated(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	}
	return info.ModTime()
}
