//go:build !windows

package launcher

import "os/exec"

// useQuotedArgs is a no-op: execve passes argv without interpretation.
func useQuotedArgs(_ *exec.Cmd) {}
