//go:build linux

package files

import (
	"os"
	"syscall"
	"time"
)

// fileCreated возвращает время изменения inode (st_ctime).
func fileCreated(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
