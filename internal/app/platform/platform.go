// Package platform describes the execution target the downloader CLI runs on
package platform

import (
	"os"
	"runtime"
)

const (
	// UnixScript is the driver script for Unix-like targets
	UnixScript = "SCMDownloaderCLI.sh"
	// OtherScript is the driver script for every other target
	OtherScript = "SCMDownloaderCLI.bat"
)

// Family selects the driver script and the argument escaping rules for a target
type Family int

const (
	UnixTarget Family = iota
	OtherTarget
)

// FamilyOf maps the environment's Unix flag to a Family
func FamilyOf(isUnix bool) Family {
	if isUnix {
		return UnixTarget
	}
	return OtherTarget
}

// Script returns the driver script filename for the family
func (f Family) Script() string {
	if f == UnixTarget {
		return UnixScript
	}
	return OtherScript
}

func (f Family) String() string {
	if f == UnixTarget {
		return "unix"
	}
	return "other"
}

// Environment describes the execution target
type Environment interface {
	// PathSeparator returns the target's file separator
	PathSeparator() string
	// IsUnix reports whether the target is Unix-like
	IsUnix() bool
}

// Local is the Environment of the machine the connector runs on
type Local struct{}

// NewLocalEnvironment will return the Environment of the current machine
func NewLocalEnvironment() *Local {
	return &Local{}
}

func (Local) PathSeparator() string {
	return string(os.PathSeparator)
}

func (Local) IsUnix() bool {
	return runtime.GOOS != "windows"
}

// Join concatenates path elements with the target separator. filepath.Join is not used because the
// target is not necessarily the machine the connector runs on.
func Join(separator string, elem ...string) string {
	path := ""
	for i, e := range elem {
		if i > 0 && len(path) > 0 && !endsWith(path, separator) {
			path += separator
		}
		path += e
	}
	return path
}

func endsWith(s, suffix string) bool {
	return len(suffix) > 0 && len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
