package pds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
	"github.com/venafi/pds-downloader-connector/internal/app/launcher"
	"github.com/venafi/pds-downloader-connector/internal/app/platform"
)

// DownloaderImpl implementation of DownloadService
type DownloaderImpl struct {
	Connections   ConnectionResolver
	Credentials   CredentialResolver
	Locations     LocationResolver
	Environment   platform.Environment
	Launcher      launcher.Launcher
	ConvertFilter FilterConverter
}

// NewDownloader will return a new DownloaderImpl using ListFilterConverter
func NewDownloader(connections ConnectionResolver, credentials CredentialResolver, locations LocationResolver,
	environment platform.Environment, processLauncher launcher.Launcher) *DownloaderImpl {
	return &DownloaderImpl{
		Connections:   connections,
		Credentials:   credentials,
		Locations:     locations,
		Environment:   environment,
		Launcher:      processLauncher,
		ConvertFilter: ListFilterConverter,
	}
}

// Download will run the downloader CLI once for req. The returned result is non-nil whenever the
// script was selected, including on failure, so callers can report the exit code.
func (d *DownloaderImpl) Download(ctx context.Context, req *domain.DownloadRequest, sink io.Writer) (*domain.DownloadResult, error) {
	if sink == nil {
		sink = io.Discard
	}

	result := &domain.DownloadResult{
		InvocationID: uuid.NewString(),
		ExitCode:     -1,
		State:        domain.NotStarted,
	}
	logger := zap.L().With(zap.String("invocationId", result.InvocationID))

	inv, err := d.resolve(&req.Configuration, req.Scope)
	if err != nil {
		logger.Error("failed to resolve download configuration", zap.Error(err))
		result.State = domain.Failed
		return result, err
	}
	result.Script = inv.Family.Script()

	if len(req.Workspace) == 0 {
		result.State = domain.Failed
		return result, fmt.Errorf("%w: workspace is empty", domain.ErrFilesystem)
	}
	inv.Workspace = req.Workspace
	inv.FilterPattern = req.Configuration.FilterPattern
	if d.ConvertFilter != nil {
		inv.FilterPattern = d.ConvertFilter(inv.FilterPattern)
	}
	inv.FileExtension = req.Configuration.FileExtension

	printf(sink, "cliScriptFile: %s", inv.ScriptPath)
	printf(sink, "topazCliWorkspace: %s", inv.DataDir())

	if name, ok := codePageName(inv.Connection.CodePage); ok {
		logger.Debug("host code page", zap.String("codePage", inv.Connection.CodePage), zap.String("encoding", name))
	} else {
		logger.Warn("unknown host code page, forwarding unchanged", zap.String("codePage", inv.Connection.CodePage))
	}

	args := BuildArguments(inv)

	if err = createDir(inv.Workspace); err != nil {
		result.State = domain.Failed
		return result, err
	}
	if err = createDir(inv.DataDir()); err != nil {
		result.State = domain.Failed
		return result, err
	}

	values := args.Values()
	command := &launcher.Command{
		Path:   values[0],
		Args:   values[1:],
		Env:    append(os.Environ(), req.Environment...),
		Dir:    inv.Workspace,
		Output: sink,
		Escape: Escaper(inv.Family),
	}

	printf(sink, "$ %s", args)
	logger.Info("invoking downloader CLI",
		zap.String("script", result.Script),
		zap.String("host", inv.Connection.Host),
		zap.String("port", inv.Connection.Port),
		zap.String("workspace", inv.Workspace),
		zap.Stringer("arguments", args))

	result.State = domain.Running
	result.ExitCode, err = d.Launcher.Run(ctx, command)
	if err != nil {
		result.State = domain.Failed
		logger.Error("downloader CLI did not run to completion", zap.String("script", result.Script), zap.Error(err))
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return result, fmt.Errorf("call %s interrupted: %w", result.Script, err)
		}
		return result, fmt.Errorf("%w: call %s: %w", domain.ErrLaunch, result.Script, err)
	}

	if result.ExitCode != 0 {
		result.State = domain.Failed
		logger.Error("downloader CLI failed", zap.String("script", result.Script), zap.Int("exitCode", result.ExitCode))
		return result, &domain.ToolFailureError{Script: result.Script, ExitCode: result.ExitCode}
	}

	result.State = domain.Succeeded
	printf(sink, "Call %s exited with value = %d", result.Script, result.ExitCode)
	logger.Info("downloader CLI finished", zap.String("script", result.Script), zap.Int("exitCode", result.ExitCode))

	return result, nil
}

// Validate will resolve the configuration and check that the driver script is installed
func (d *DownloaderImpl) Validate(configuration *domain.PdsConfiguration, scope string) (*domain.ValidationResult, error) {
	inv, err := d.resolve(configuration, scope)
	if err != nil {
		return nil, err
	}

	if _, err = os.Stat(inv.ScriptPath); err != nil {
		return nil, fmt.Errorf(`driver script "%s": %w`, inv.ScriptPath, err)
	}

	return &domain.ValidationResult{
		Script:     inv.ScriptPath,
		Connection: inv.Connection,
	}, nil
}

// resolve selects the driver script and looks up the connection and credentials
func (d *DownloaderImpl) resolve(configuration *domain.PdsConfiguration, scope string) (*Invocation, error) {
	separator := d.Environment.PathSeparator()
	isUnix := d.Environment.IsUnix()
	family := platform.FamilyOf(isUnix)

	connection, err := d.Connections.ResolveConnection(configuration.ConnectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve connection: %w", err)
	}

	credentials, err := d.Credentials.ResolveCredentials(configuration.CredentialsID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}

	return &Invocation{
		Family:      family,
		Separator:   separator,
		ScriptPath:  platform.Join(separator, d.Locations.Location(isUnix), family.Script()),
		Connection:  connection,
		Credentials: credentials,
	}, nil
}

func createDir(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("%w: could not create directory '%s': %w", domain.ErrFilesystem, path, err)
	}
	return nil
}

func printf(sink io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(sink, format+"\n", a...); err != nil {
		zap.L().Error("failed to write to log sink", zap.Error(err))
	}
}
