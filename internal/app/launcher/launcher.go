// Package launcher runs the downloader CLI as a child process
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/go-cmd/cmd"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source ./launcher.go -destination=./mocks/mock_launcher.go -package=mocks

// Command describes a single process launch
type Command struct {
	// Path is the executable or script to run
	Path string
	// Args are passed after Path, in order
	Args []string
	// Env is the complete environment of the child process
	Env []string
	// Dir is the working directory of the child process
	Dir string
	// Output receives stdout and stderr, one line per write
	Output io.Writer
	// Escape, when set, quotes each argument for the command interpreter that parses the command
	// line of the target (cmd.exe for batch drivers)
	Escape func(string) string
}

// Launcher starts a process and blocks until it exits
type Launcher interface {
	// Run returns the exit code of the process. An error is returned when the process could not be
	// started or was stopped before it exited.
	Run(ctx context.Context, command *Command) (int, error)
}

// CmdLauncherImpl implementation of Launcher on top of go-cmd
type CmdLauncherImpl struct {
}

// NewCmdLauncher will return a new Launcher
func NewCmdLauncher() *CmdLauncherImpl {
	return &CmdLauncherImpl{}
}

// Run will start the command, stream its output and wait for it to exit
func (l *CmdLauncherImpl) Run(ctx context.Context, command *Command) (int, error) {
	if command == nil || len(command.Path) == 0 {
		return -1, errors.New("no command to run")
	}

	options := cmd.Options{
		Buffered:  false,
		Streaming: true,
	}

	args := command.Args
	if command.Escape != nil {
		args = make([]string, len(command.Args))
		for i, arg := range command.Args {
			args[i] = command.Escape(arg)
		}
		options.BeforeExec = []func(c *exec.Cmd){useQuotedArgs}
	}

	c := cmd.NewCmdOptions(options, command.Path, args...)
	c.Env = command.Env
	c.Dir = command.Dir

	output := command.Output
	if output == nil {
		output = io.Discard
	}

	streamed := make(chan struct{})
	go stream(c, output, streamed)

	var status cmd.Status
	select {
	case status = <-c.Start():
	case <-ctx.Done():
		zap.L().Warn("stopping child process", zap.String("path", command.Path), zap.Error(ctx.Err()))
		if err := c.Stop(); err != nil {
			zap.L().Error("failed to stop child process", zap.String("path", command.Path), zap.Error(err))
		}
		status = c.Status()
		<-streamed
		return status.Exit, fmt.Errorf("%s stopped: %w", command.Path, ctx.Err())
	}
	<-streamed

	if status.Error != nil {
		return status.Exit, status.Error
	}

	if !status.Complete {
		return status.Exit, fmt.Errorf("%s did not complete", command.Path)
	}

	return status.Exit, nil
}

// stream copies stdout and stderr lines to out until both channels are closed or the command is done.
func stream(c *cmd.Cmd, out io.Writer, streamed chan struct{}) {
	defer close(streamed)

	stdout, stderr := c.Stdout, c.Stderr
	done := c.Done()

	for stdout != nil || stderr != nil {
		select {
		case line, open := <-stdout:
			if !open {
				stdout = nil
				continue
			}
			writeLine(out, line)
		case line, open := <-stderr:
			if !open {
				stderr = nil
				continue
			}
			writeLine(out, line)
		case <-done:
			drain(stdout, out)
			drain(stderr, out)
			return
		}
	}
}

func drain(lines chan string, out io.Writer) {
	if lines == nil {
		return
	}
	for {
		select {
		case line, open := <-lines:
			if !open {
				return
			}
			writeLine(out, line)
		default:
			return
		}
	}
}

func writeLine(out io.Writer, line string) {
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		zap.L().Error("failed to write process output", zap.Error(err))
	}
}
