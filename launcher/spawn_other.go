//go:build !windows

package launcher

import (
	"os/exec"
	"runtime"
)

func shellCommand(path string) []string {
	if runtime.GOOS == "darwin" {
		return []string{"open", path}
	}
	return []string{"xdg-open", path}
}

func configureDirect(cmd *exec.Cmd) {}

func configureShell(cmd *exec.Cmd) {}
