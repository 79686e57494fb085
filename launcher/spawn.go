package launcher

import (
	"fmt"
	"os/exec"
)

// Spawner starts processes without waiting for them
type Spawner interface {
	// Start runs the executable directly
	Start(path string) error
	// StartShell hands the path to the platform shell's start command
	StartShell(path string) error
}

// ExecSpawner starts processes with os/exec
type ExecSpawner struct{}

// NewExecSpawner creates a spawner backed by os/exec
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{}
}

// Start launches path as a new process
func (s *ExecSpawner) Start(path string) error {
	cmd := exec.Command(path)
	configureDirect(cmd)
	return startDetached(cmd)
}

// StartShell launches path through the platform shell
func (s *ExecSpawner) StartShell(path string) error {
	args := shellCommand(path)
	cmd := exec.Command(args[0], args[1:]...)
	configureShell(cmd)
	return startDetached(cmd)
}

// startDetached starts cmd and drops the handle, the launcher never waits on
// its children.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release process %d: %w", cmd.Process.Pid, err)
	}
	return nil
}
