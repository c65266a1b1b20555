package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/boundaries/out/mocks"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/services"
)

func TestServiceContext_Identity(t *testing.T) {
	sc := services.NewServiceContext(mocks.NewMockOrchestrator(t), "db", "172.23.0.2", "/suite-execution", "/test-volume")

	assert.Equal(t, domain.ServiceID("db"), sc.GetServiceID())
	assert.Equal(t, "172.23.0.2", sc.GetIPAddress())
}

func TestServiceContext_ExecCommand(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockOrchestrator(t)
	args := []string{"sh", "-c", "echo hello world"}
	client.On("ExecCommand", mock.Anything, domain.ServiceID("db"), args).
		Return(&domain.ExecResult{ExitCode: 2, Output: []byte("hello world\n")}, nil)

	sc := services.NewServiceContext(client, "db", "172.23.0.2", "/suite-execution", "/test-volume")
	code, output, err := sc.ExecCommand(ctx, args)

	require.NoError(t, err)
	assert.Equal(t, int32(2), code)
	assert.Equal(t, "hello world\n", string(output))
}

func TestServiceContext_ExecCommandError(t *testing.T) {
	client := mocks.NewMockOrchestrator(t)
	client.On("ExecCommand", mock.Anything, domain.ServiceID("db"), mock.Anything).
		Return(nil, errors.New("unavailable"))

	sc := services.NewServiceContext(client, "db", "172.23.0.2", "/suite-execution", "/test-volume")
	_, _, err := sc.ExecCommand(context.Background(), []string{"echo", "a b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "echo 'a b'")
	assert.Contains(t, err.Error(), "unavailable")
}

func TestServiceContext_ExecCommandEmpty(t *testing.T) {
	sc := services.NewServiceContext(mocks.NewMockOrchestrator(t), "db", "", "/suite-execution", "/test-volume")

	_, _, err := sc.ExecCommand(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestServiceContext_GenerateFiles(t *testing.T) {
	client := mocks.NewMockOrchestrator(t)
	fileIDs := map[string]bool{"genesis": true}
	client.On("GenerateFiles", mock.Anything, domain.ServiceID("node"), fileIDs).
		Return(map[string]string{"genesis": "services/node/genesis"}, nil)

	sc := services.NewServiceContext(client, "node", "172.23.0.3", "/suite-execution", "/test-volume")
	paths, err := sc.GenerateFiles(context.Background(), fileIDs)

	require.NoError(t, err)
	require.Contains(t, paths, "genesis")
	assert.Equal(t, "/suite-execution/services/node/genesis", paths["genesis"].OnTestsuite)
	assert.Equal(t, "/test-volume/services/node/genesis", paths["genesis"].OnService)
}

func TestServiceContext_GenerateFilesRPCError(t *testing.T) {
	client := mocks.NewMockOrchestrator(t)
	client.On("GenerateFiles", mock.Anything, domain.ServiceID("node"), mock.Anything).
		Return(nil, errors.New("boom"))

	sc := services.NewServiceContext(client, "node", "", "/suite-execution", "/test-volume")
	_, err := sc.GenerateFiles(context.Background(), map[string]bool{"a": true})

	assert.ErrorIs(t, err, domain.ErrRegistration)
}

func TestResolveGeneratedFilepaths_Errors(t *testing.T) {
	tests := []struct {
		name      string
		requested map[string]bool
		relPaths  map[string]string
	}{
		{"missing path", map[string]bool{"a": true}, map[string]string{}},
		{"unrequested path", map[string]bool{"a": true}, map[string]string{"a": "x/a", "b": "x/b"}},
		{"escaping path", map[string]bool{"a": true}, map[string]string{"a": "../etc/passwd"}},
		{"absolute path", map[string]bool{"a": true}, map[string]string{"a": "/etc/passwd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ResolveGeneratedFilepaths(tt.requested, tt.relPaths, "/suite", "/svc")
			assert.ErrorIs(t, err, domain.ErrFileIO)
		})
	}
}

func TestInitializeGeneratedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := map[string]*services.GeneratedFileFilepaths{
		"config": {OnTestsuite: "/suite/services/api/config", OnService: "/svc/services/api/config"},
	}
	inits := map[string]services.FileInitializer{
		"config": func(w io.Writer) error {
			_, err := fmt.Fprint(w, "port=80")
			return err
		},
	}

	servicePaths, err := services.InitializeGeneratedFiles(fs, paths, inits)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"config": "/svc/services/api/config"}, servicePaths)
	content, err := afero.ReadFile(fs, "/suite/services/api/config")
	require.NoError(t, err)
	assert.Equal(t, "port=80", string(content))
}

func TestInitializeGeneratedFiles_InitializerFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := map[string]*services.GeneratedFileFilepaths{
		"config": {OnTestsuite: "/suite/config", OnService: "/svc/config"},
	}
	inits := map[string]services.FileInitializer{
		"config": func(io.Writer) error { return errors.New("disk full") },
	}

	_, err := services.InitializeGeneratedFiles(fs, paths, inits)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileIO)
	var fileErr *domain.FileIOError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "config", fileErr.FileID)
}

func TestInitializeGeneratedFiles_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	paths := map[string]*services.GeneratedFileFilepaths{
		"config": {OnTestsuite: "/suite/config", OnService: "/svc/config"},
	}
	inits := map[string]services.FileInitializer{
		"config": func(io.Writer) error { return nil },
	}

	_, err := services.InitializeGeneratedFiles(fs, paths, inits)

	assert.ErrorIs(t, err, domain.ErrFileIO)
}
