package domain

// InvocationState is the lifecycle state of a single downloader invocation
type InvocationState int

const (
	NotStarted InvocationState = iota
	Running
	Succeeded
	Failed
)

func (s InvocationState) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// DownloadResult contains the outcome of a downloader invocation
type DownloadResult struct {
	InvocationID string
	Script       string
	ExitCode     int
	State        InvocationState
}

// Success reports whether the CLI exited with value 0
func (r *DownloadResult) Success() bool {
	return r != nil && r.State == Succeeded && r.ExitCode == 0
}

// ValidationResult describes a configuration that resolved without launching the CLI
type ValidationResult struct {
	Script     string
	Connection *Connection
}
