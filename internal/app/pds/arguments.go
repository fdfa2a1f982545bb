package pds

import (
	"strings"

	"github.com/samber/lo"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
	"github.com/venafi/pds-downloader-connector/internal/app/platform"
)

// Flags and fixed values understood by the downloader CLI. The order in which BuildArguments adds
// them is part of the CLI contract.
const (
	HostParm         = "-host"
	PortParm         = "-port"
	UserIDParm       = "-id"
	PasswordParm     = "-pw"
	CodePageParm     = "-code"
	TimeoutParm      = "-timeout"
	ScmTypeParm      = "-scmtype"
	TargetFolderParm = "-targetfolder"
	DataParm         = "-data"
	FilterParm       = "-filter"
	FileExtParm      = "-fileext"

	// ScmTypePDS tags the invocation as a PDS download
	ScmTypePDS = "PDS"
	// WorkingDataDir is the folder under the workspace the CLI keeps its own bookkeeping in
	WorkingDataDir = "TopazCliWkspc"
)

// Argument is a single command line value
type Argument struct {
	Value     string
	Sensitive bool
}

// ArgumentList is an ordered command line. Sensitive values are masked whenever the list is rendered.
type ArgumentList []Argument

// Add appends plain values
func (l *ArgumentList) Add(values ...string) *ArgumentList {
	for _, v := range values {
		*l = append(*l, Argument{Value: v})
	}
	return l
}

// AddSensitive appends a value that is masked when the list is rendered
func (l *ArgumentList) AddSensitive(value domain.Sensitive) *ArgumentList {
	*l = append(*l, Argument{Value: value.Reveal(), Sensitive: true})
	return l
}

// Values returns the unmasked values, for the process launcher only
func (l ArgumentList) Values() []string {
	return lo.Map(l, func(a Argument, _ int) string { return a.Value })
}

// String renders the list with sensitive values masked
func (l ArgumentList) String() string {
	return strings.Join(lo.Map(l, func(a Argument, _ int) string {
		if a.Sensitive {
			return domain.Masked
		}
		return a.Value
	}), " ")
}

// Invocation holds the resolved inputs of one CLI call
type Invocation struct {
	Family        platform.Family
	Separator     string
	ScriptPath    string
	Connection    *domain.Connection
	Credentials   *domain.Credentials
	Workspace     string
	FilterPattern string
	FileExtension string
}

// DataDir returns the CLI working-data directory under the workspace
func (inv *Invocation) DataDir() string {
	return platform.Join(inv.Separator, inv.Workspace, WorkingDataDir)
}

// BuildArguments returns the CLI command line for inv with the password added as a sensitive argument.
// Values are the literal ones the CLI must receive, whatever the target family; quoting for the
// target's command interpreter happens at launch, see Escaper.
func BuildArguments(inv *Invocation) ArgumentList {
	args := ArgumentList{}
	args.Add(inv.ScriptPath)
	args.Add(HostParm, inv.Connection.Host)
	args.Add(PortParm, inv.Connection.Port)
	args.Add(UserIDParm, inv.Credentials.Username)
	args.Add(PasswordParm)
	args.AddSensitive(inv.Credentials.Password)
	args.Add(CodePageParm, inv.Connection.CodePage)
	args.Add(TimeoutParm, inv.Connection.Timeout)
	args.Add(ScmTypeParm, ScmTypePDS)
	args.Add(TargetFolderParm, inv.Workspace)
	args.Add(DataParm, inv.DataDir())
	args.Add(FilterParm, inv.FilterPattern)
	args.Add(FileExtParm, inv.FileExtension)

	return args
}

// Escaper returns the launch-time quoting for the family, nil when argv reaches the driver untouched
func Escaper(family platform.Family) func(string) string {
	if family == platform.UnixTarget {
		return nil
	}
	return func(value string) string {
		return platform.Escape(family, value)
	}
}
