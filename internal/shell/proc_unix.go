//go:build unix

package shell

import (
	"os/exec"
	"syscall"
)

// configureProcAttrs запускает команду в собственной группе процессов и
// завершает по дедлайну всю группу, иначе внуки переживают таймаут.
func configureProcAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
