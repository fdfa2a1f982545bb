//go:build windows

package launcher

import (
	"os/exec"
	"strings"
	"syscall"
)

// useQuotedArgs hands the pre-quoted arguments to CreateProcess untouched. Without it os/exec would
// escape the quotes a second time and the batch driver would see them.
func useQuotedArgs(c *exec.Cmd) {
	if c.SysProcAttr == nil {
		c.SysProcAttr = &syscall.SysProcAttr{}
	}
	c.SysProcAttr.CmdLine = `"` + c.Path + `" ` + strings.Join(c.Args[1:], " ")
}
