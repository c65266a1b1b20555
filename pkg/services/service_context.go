package services

import (
	"context"
	"fmt"
	"path"

	"github.com/alessio/shellescape"
	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/internal/validation"
	"github.com/bnema/testnet/pkg/domain"
)

// GeneratedFileFilepaths locates one generated file from both sides of the
// shared suite execution volume.
type GeneratedFileFilepaths struct {
	// OnTestsuite is the absolute path inside the testsuite container.
	OnTestsuite string
	// OnService is the absolute path inside the service container.
	OnService string
}

// ServiceContext gives a Service access to its container: identity, address,
// command execution and file generation.
type ServiceContext struct {
	client                 out.ServiceCommander
	serviceID              domain.ServiceID
	ipAddress              string
	suiteExVolMountpoint   string
	serviceExVolMountpoint string
}

// NewServiceContext creates the context of a started service. suiteExVolMountpoint
// and serviceExVolMountpoint are where the suite execution volume is mounted in
// the testsuite and in the service container.
func NewServiceContext(client out.ServiceCommander, serviceID domain.ServiceID, ipAddress, suiteExVolMountpoint, serviceExVolMountpoint string) *ServiceContext {
	return &ServiceContext{
		client:                 client,
		serviceID:              serviceID,
		ipAddress:              ipAddress,
		suiteExVolMountpoint:   suiteExVolMountpoint,
		serviceExVolMountpoint: serviceExVolMountpoint,
	}
}

func (sc *ServiceContext) GetServiceID() domain.ServiceID { return sc.serviceID }

func (sc *ServiceContext) GetIPAddress() string { return sc.ipAddress }

// ExecCommand runs args inside the service container and returns its exit
// code and combined output. A non-zero exit code is not an error.
func (sc *ServiceContext) ExecCommand(ctx context.Context, args []string) (int32, []byte, error) {
	if len(args) == 0 {
		return 0, nil, &domain.ConfigurationError{Field: "command", Reason: "must not be empty"}
	}

	log := zerowrap.FromCtx(ctx)
	command := shellescape.QuoteCommand(args)

	result, err := sc.client.ExecCommand(ctx, sc.serviceID, args)
	if err != nil {
		log.Error().Err(err).
			Str(zerowrap.FieldEntityID, string(sc.serviceID)).
			Str("command", command).
			Msg("command execution failed")
		return 0, nil, fmt.Errorf("exec %s in service %s: %w", command, sc.serviceID, err)
	}

	log.Debug().
		Str(zerowrap.FieldEntityID, string(sc.serviceID)).
		Str("command", command).
		Int32("exit_code", result.ExitCode).
		Int("output_bytes", len(result.Output)).
		Msg("command executed")

	return result.ExitCode, result.Output, nil
}

// GenerateFiles asks the orchestrator to create empty files for fileIDs on the
// suite execution volume and returns where each one lives.
func (sc *ServiceContext) GenerateFiles(ctx context.Context, fileIDs map[string]bool) (map[string]*GeneratedFileFilepaths, error) {
	relPaths, err := sc.client.GenerateFiles(ctx, sc.serviceID, fileIDs)
	if err != nil {
		return nil, &domain.RegistrationError{Operation: "generate files", ServiceID: sc.serviceID, Cause: err}
	}
	return ResolveGeneratedFilepaths(fileIDs, relPaths, sc.suiteExVolMountpoint, sc.serviceExVolMountpoint)
}

// ResolveGeneratedFilepaths maps the relative paths returned by the orchestrator
// onto both mountpoints. Every requested id must have exactly one path and no
// path may escape the volume.
func ResolveGeneratedFilepaths(requested map[string]bool, relPaths map[string]string, suiteRoot, serviceRoot string) (map[string]*GeneratedFileFilepaths, error) {
	for id := range relPaths {
		if !requested[id] {
			return nil, &domain.FileIOError{FileID: id, Path: relPaths[id], Cause: fmt.Errorf("path returned for a file that was not requested")}
		}
	}

	result := make(map[string]*GeneratedFileFilepaths, len(requested))
	for id := range requested {
		rel, ok := relPaths[id]
		if !ok {
			return nil, &domain.FileIOError{FileID: id, Cause: fmt.Errorf("no path returned for requested file")}
		}
		onTestsuite, err := validation.JoinWithinRoot(suiteRoot, rel)
		if err != nil {
			return nil, &domain.FileIOError{FileID: id, Path: rel, Cause: err}
		}
		onService, err := validation.JoinWithinRoot(serviceRoot, rel)
		if err != nil {
			return nil, &domain.FileIOError{FileID: id, Path: rel, Cause: err}
		}
		result[id] = &GeneratedFileFilepaths{OnTestsuite: onTestsuite, OnService: onService}
	}
	return result, nil
}

// InitializeGeneratedFiles creates each file on fs and runs its initializer.
// It returns the service-side path of every file keyed by file id.
func InitializeGeneratedFiles(fs afero.Fs, filepaths map[string]*GeneratedFileFilepaths, initializers map[string]FileInitializer) (map[string]string, error) {
	servicePaths := make(map[string]string, len(filepaths))
	for id, paths := range filepaths {
		init, ok := initializers[id]
		if !ok {
			return nil, &domain.FileIOError{FileID: id, Path: paths.OnTestsuite, Cause: fmt.Errorf("no initializer for file")}
		}
		if err := writeGeneratedFile(fs, paths.OnTestsuite, init); err != nil {
			return nil, &domain.FileIOError{FileID: id, Path: paths.OnTestsuite, Cause: err}
		}
		servicePaths[id] = paths.OnService
	}
	return servicePaths, nil
}

func writeGeneratedFile(fs afero.Fs, filePath string, init FileInitializer) (err error) {
	if err := fs.MkdirAll(path.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	f, err := fs.Create(filePath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close file: %w", cerr)
		}
	}()

	if err := init(f); err != nil {
		return fmt.Errorf("initialize file: %w", err)
	}
	return nil
}
