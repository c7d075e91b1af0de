//go:build !unix

package shell

import "os/exec"

// configureProcAttrs на платформах без групп процессов оставляет
// стандартное поведение CommandContext (kill только прямого потомка).
func configureProcAttrs(_ *exec.Cmd) {}
